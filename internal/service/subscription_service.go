package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "roster/internal/errors"
	"roster/internal/model"
	"roster/internal/repository"
)

// SubscribeInput is a browser push subscription.
type SubscribeInput struct {
	Endpoint string `json:"endpoint" validate:"required,url,max=500"`
	P256dh   string `json:"p256dh" validate:"max=300"`
	Auth     string `json:"auth" validate:"max=300"`
}

// SubscriptionService manages push subscriptions.
type SubscriptionService interface {
	// Subscribe stores the subscription for the actor. created is false when an
	// existing (user, endpoint) pair only had its keys replaced.
	Subscribe(ctx context.Context, actor Actor, in SubscribeInput) (sub *model.Subscription, created bool, err error)
	List(ctx context.Context, actor Actor) ([]model.Subscription, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type subscriptionService struct {
	repo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(repo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{repo: repo}
}

func (s *subscriptionService) Subscribe(ctx context.Context, actor Actor, in SubscribeInput) (*model.Subscription, bool, error) {
	p256dh, authKey := strings.TrimSpace(in.P256dh), strings.TrimSpace(in.Auth)
	if p256dh == "" || authKey == "" {
		return nil, false, fmt.Errorf("%w: subscription has no p256dh/auth keys", apperrors.ErrMissingRequiredField)
	}

	sub := &model.Subscription{
		UserID:   actor.UserID,
		Endpoint: strings.TrimSpace(in.Endpoint),
		P256dh:   p256dh,
		Auth:     authKey,
	}
	created, err := s.repo.Upsert(ctx, sub)
	if err != nil {
		return nil, false, fmt.Errorf("save subscription: %w", err)
	}
	return sub, created, nil
}

// List returns every subscription to admins and the caller's own otherwise.
func (s *subscriptionService) List(ctx context.Context, actor Actor) ([]model.Subscription, error) {
	var target *uint
	if !actor.IsAdmin {
		target = &actor.UserID
	}
	subs, err := s.repo.ListFor(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	if subs == nil {
		subs = []model.Subscription{}
	}
	return subs, nil
}

func (s *subscriptionService) Delete(ctx context.Context, actor Actor, id uint) error {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin && sub.UserID != actor.UserID {
		return apperrors.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
