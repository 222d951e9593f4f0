package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"roster/internal/auth"
	apperrors "roster/internal/errors"
	"roster/internal/mail"
	"roster/internal/model"
	"roster/internal/repository"
)

const resetMailSubject = "Password reset"

// PasswordResetService issues and redeems password reset tokens.
type PasswordResetService interface {
	// RequestReset queues issuing a token and mailing a reset link when email
	// belongs to a user. It reports nothing back, so callers cannot tell
	// whether it did.
	RequestReset(ctx context.Context, email string)
	// Redeem sets a new password using a valid token. The token is consumed.
	Redeem(ctx context.Context, token, newPassword string) error
}

type passwordResetService struct {
	users       repository.UserRepository
	tokens      repository.ResetTokenRepository
	mailer      mail.Mailer
	pool        Submitter
	frontendURL string
	mailTimeout time.Duration
	now         func() time.Time
	log         logrus.FieldLogger
}

// NewPasswordResetService wires the reset flow. Requests are served on pool.
func NewPasswordResetService(
	users repository.UserRepository,
	tokens repository.ResetTokenRepository,
	mailer mail.Mailer,
	pool Submitter,
	frontendURL string,
	mailTimeout time.Duration,
	log logrus.FieldLogger,
) PasswordResetService {
	return &passwordResetService{
		users:       users,
		tokens:      tokens,
		mailer:      mailer,
		pool:        pool,
		frontendURL: frontendURL,
		mailTimeout: mailTimeout,
		now:         time.Now,
		log:         log.WithField("component", "password_reset"),
	}
}

func (s *passwordResetService) RequestReset(_ context.Context, email string) {
	email = normalizeEmail(email)
	if err := s.pool.Submit(func(ctx context.Context) { s.issue(ctx, email) }); err != nil {
		s.log.WithError(err).Warn("reset request not queued")
	}
}

// issue runs on the pool so known and unknown emails cost the caller the same.
func (s *passwordResetService) issue(ctx context.Context, email string) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			s.log.WithError(err).Error("lookup user for reset")
		}
		return
	}

	token, err := auth.NewResetToken()
	if err != nil {
		s.log.WithError(err).Error("generate reset token")
		return
	}

	rt := &model.ResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: s.now().Add(auth.ResetTokenExpiry),
	}
	if err := s.tokens.Create(ctx, rt); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Error("store reset token")
		return
	}

	if s.mailTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.mailTimeout)
		defer cancel()
	}
	msg := mail.Message{
		To:      user.Email,
		Subject: resetMailSubject,
		Body:    resetMailBody(user.Name, auth.ResetLink(s.frontendURL, token)),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("send reset mail")
	}
}

func (s *passwordResetService) Redeem(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperrors.ErrTokenNotFound
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	rt, err := s.tokens.Redeem(ctx, token, s.now(), hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) || errors.Is(err, apperrors.ErrTokenExpired) {
			return err
		}
		return fmt.Errorf("redeem reset token: %w", err)
	}
	s.log.WithField("user_id", rt.UserID).Info("password reset")
	return nil
}

func resetMailBody(name, link string) string {
	return fmt.Sprintf("Hello %s,\n\n"+
		"To reset your password open the following link:\n%s\n\n"+
		"The link expires in one hour and can be used once. "+
		"If you did not request this, ignore this email.\n", name, link)
}
