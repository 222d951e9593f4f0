package service

import (
	"context"
	"fmt"
	"time"

	"roster/internal/model"
	"roster/internal/repository"
)

// Notifier hands a message to the push fan-out without waiting for delivery.
type Notifier interface {
	Enqueue(userID *uint, message string)
}

// CreateNotificationInput is the payload for creating a notification.
// An absent, null or zero user_id broadcasts to everyone.
type CreateNotificationInput struct {
	UserID  model.OptionalID `json:"user_id" swaggertype:"integer"`
	Message string           `json:"message" validate:"required,max=2000"`
	Date    *time.Time       `json:"date"`
}

// NotificationService stores notifications and triggers their delivery.
type NotificationService interface {
	Create(ctx context.Context, in CreateNotificationInput) (*model.Notification, error)
	List(ctx context.Context, userID *uint) ([]model.Notification, error)
	Delete(ctx context.Context, id uint) error
}

type notificationService struct {
	repo     repository.Repository[model.Notification]
	notifier Notifier
	now      func() time.Time
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.Repository[model.Notification], notifier Notifier) NotificationService {
	return &notificationService{repo: repo, notifier: notifier, now: time.Now}
}

// Create stores the notification, then enqueues push delivery. Delivery
// outcome never affects the result.
func (s *notificationService) Create(ctx context.Context, in CreateNotificationInput) (*model.Notification, error) {
	n := &model.Notification{
		UserID:  in.UserID.NonZero(),
		Message: in.Message,
		Date:    s.now(),
	}
	if in.Date != nil {
		n.Date = *in.Date
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.notifier.Enqueue(n.UserID, n.Message)
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID *uint) ([]model.Notification, error) {
	filter := repository.Filter{}
	if userID != nil {
		filter["user_id"] = *userID
	}
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items, nil
}

func (s *notificationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
