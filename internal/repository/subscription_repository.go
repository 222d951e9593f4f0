package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roster/internal/model"
)

// SubscriptionRepository defines push subscription persistence operations.
type SubscriptionRepository interface {
	Repository[model.Subscription]
	// Upsert creates the subscription, or replaces the keys of the existing
	// one for the same (user, endpoint). It reports whether a row was created.
	Upsert(ctx context.Context, sub *model.Subscription) (created bool, err error)
	// ListFor returns the subscriptions of userID, or every subscription when nil.
	ListFor(ctx context.Context, userID *uint) ([]model.Subscription, error)
}

type subscriptionRepository struct {
	gormRepository[model.Subscription]
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{gormRepository[model.Subscription]{db: db}}
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *model.Subscription) (bool, error) {
	created, err := r.upsert(ctx, sub)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a race with a concurrent create of the same pair
		return r.upsert(ctx, sub)
	}
	return created, err
}

func (r *subscriptionRepository) upsert(ctx context.Context, sub *model.Subscription) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Subscription
		err := tx.Where("user_id = ? AND endpoint = ?", sub.UserID, sub.Endpoint).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(sub).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"p256dh": sub.P256dh,
			"auth":   sub.Auth,
		}).Error; err != nil {
			return err
		}
		existing.P256dh = sub.P256dh
		existing.Auth = sub.Auth
		*sub = existing
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *subscriptionRepository) ListFor(ctx context.Context, userID *uint) ([]model.Subscription, error) {
	filter := Filter{}
	if userID != nil {
		filter["user_id"] = *userID
	}
	return r.List(ctx, filter)
}
