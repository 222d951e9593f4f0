package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "roster/internal/errors"
	"roster/internal/model"
)

// ResetTokenRepository defines reset token persistence operations.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.ResetToken) error
	FindByToken(ctx context.Context, token string) (*model.ResetToken, error)
	// Redeem consumes the token and stores the new password hash for its owner
	// in one transaction. The token is claimed by a single conditional UPDATE,
	// so of two concurrent calls at most one succeeds.
	Redeem(ctx context.Context, token string, now time.Time, passwordHash string) (*model.ResetToken, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a new reset token repository.
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create stores a freshly issued token.
func (r *resetTokenRepository) Create(ctx context.Context, token *model.ResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByToken finds a token by its opaque value.
func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*model.ResetToken, error) {
	return findToken(r.db.WithContext(ctx), token)
}

// Redeem marks the token used and updates the owner's password.
func (r *resetTokenRepository) Redeem(ctx context.Context, token string, now time.Time, passwordHash string) (*model.ResetToken, error) {
	var redeemed *model.ResetToken
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ResetToken{}).
			Where("token = ? AND used = ? AND expires_at >= ?", token, false, now).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return classify(tx, token, now)
		}

		rt, err := findToken(tx, token)
		if err != nil {
			return err
		}

		res = tx.Model(&model.User{}).
			Where("id = ?", rt.UserID).
			Update("password_hash", passwordHash)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// owner deleted since issuance; roll the claim back
			return apperrors.ErrTokenNotFound
		}
		redeemed = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redeemed, nil
}

// DeleteExpired removes tokens that can no longer be redeemed.
func (r *resetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("used = ? OR expires_at < ?", true, now).
		Delete(&model.ResetToken{})
	return res.RowsAffected, res.Error
}

func findToken(db *gorm.DB, token string) (*model.ResetToken, error) {
	var rt model.ResetToken
	if err := db.Where("token = ?", token).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, err
	}
	return &rt, nil
}

// classify explains why the conditional UPDATE matched nothing.
func classify(db *gorm.DB, token string, now time.Time) error {
	rt, err := findToken(db, token)
	if err != nil {
		return err
	}
	if !rt.Used && rt.Expired(now) {
		return apperrors.ErrTokenExpired
	}
	return apperrors.ErrTokenNotFound
}
