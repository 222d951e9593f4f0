package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"roster/internal/auth"
	"roster/internal/cache"
	apperrors "roster/internal/errors"
	"roster/internal/model"
	"roster/internal/policy"
	"roster/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// CreateUserInput is the payload for creating a user.
type CreateUserInput struct {
	Rank          string           `json:"rank" validate:"required,max=50"`
	Name          string           `json:"name" validate:"required,max=150"`
	Email         string           `json:"email" validate:"required,email,max=150"`
	Password      string           `json:"password" validate:"required,min=8,max=72"`
	Role          model.Role       `json:"role"`
	AdmissionDate *time.Time       `json:"admission_date"`
	ZoneID        model.OptionalID `json:"zone_id" swaggertype:"integer"`
	DependencyID  model.OptionalID `json:"dependency_id" swaggertype:"integer"`
	ShiftID       model.OptionalID `json:"shift_id" swaggertype:"integer"`
	DutyID        model.OptionalID `json:"duty_id" swaggertype:"integer"`
	Status        string           `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	IsAdmin       bool             `json:"is_admin"`
}

// UserPatch is a partial update. Nil pointers and unset IDs keep the stored value.
type UserPatch struct {
	Rank          *string          `json:"rank" validate:"omitempty,max=50"`
	Name          *string          `json:"name" validate:"omitempty,max=150"`
	Email         *string          `json:"email" validate:"omitempty,email,max=150"`
	Role          *model.Role      `json:"role"`
	AdmissionDate *time.Time       `json:"admission_date"`
	ZoneID        model.OptionalID `json:"zone_id" swaggertype:"integer"`
	DependencyID  model.OptionalID `json:"dependency_id" swaggertype:"integer"`
	ShiftID       model.OptionalID `json:"shift_id" swaggertype:"integer"`
	DutyID        model.OptionalID `json:"duty_id" swaggertype:"integer"`
	Status        *string          `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	IsAdmin       *bool            `json:"is_admin"`
}

// ChangePasswordInput is the payload for a self-service password change.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// SetupInput is the payload for creating the first administrator.
type SetupInput struct {
	Name     string `json:"name" validate:"omitempty,max=150"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserLeaves groups a user's leaves, with medical leaves listed separately.
type UserLeaves struct {
	Leaves        []model.Leave `json:"leaves"`
	MedicalLeaves []model.Leave `json:"medical_leaves"`
}

// AccountService manages users and their credentials.
type AccountService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uint, patch UserPatch) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	ChangePassword(ctx context.Context, actor Actor, id uint, in ChangePasswordInput) error
	Setup(ctx context.Context, in SetupInput) (*model.User, error)
	Leaves(ctx context.Context, id uint) (*UserLeaves, error)
}

type accountService struct {
	users  repository.UserRepository
	leaves repository.Repository[model.Leave]
	cache  *cache.Client
}

// NewAccountService builds an AccountService with repositories and cache.
func NewAccountService(users repository.UserRepository, leaves repository.Repository[model.Leave], cache *cache.Client) AccountService {
	return &accountService{users: users, leaves: leaves, cache: cache}
}

func (s *accountService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Create validates the role assignment, hashes the password and stores the user.
func (s *accountService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	assignment, err := policy.Resolve(in.Role, in.ZoneID.Ptr(), in.DependencyID.Ptr())
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	if err := s.ensureEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.UserStatusActive
	}

	user := &model.User{
		Rank:          in.Rank,
		Name:          in.Name,
		Email:         email,
		PasswordHash:  hash,
		Role:          in.Role,
		AdmissionDate: in.AdmissionDate,
		ZoneID:        assignment.ZoneID,
		DependencyID:  assignment.DependencyID,
		ShiftID:       in.ShiftID.Ptr(),
		DutyID:        in.DutyID.Ptr(),
		Status:        status,
		IsAdmin:       in.IsAdmin || in.Role == model.RoleAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Get returns a user, served from cache when possible.
func (s *accountService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *accountService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Update merges patch onto the stored user and re-runs the role policy on the result.
func (s *accountService) Update(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := user.Role
	if patch.Role != nil {
		role = *patch.Role
	}
	assignment, err := policy.Resolve(role, patch.ZoneID.Or(user.ZoneID), patch.DependencyID.Or(user.DependencyID))
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if patch.Rank != nil {
		user.Rank = *patch.Rank
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.AdmissionDate != nil {
		user.AdmissionDate = patch.AdmissionDate
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}
	user.Role = role
	user.ZoneID = assignment.ZoneID
	user.DependencyID = assignment.DependencyID
	user.ShiftID = patch.ShiftID.Or(user.ShiftID)
	user.DutyID = patch.DutyID.Or(user.DutyID)
	if role == model.RoleAdmin {
		user.IsAdmin = true
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *accountService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ChangePassword replaces the caller's own password after verifying the current one.
func (s *accountService) ChangePassword(ctx context.Context, actor Actor, id uint, in ChangePasswordInput) error {
	if actor.UserID != id {
		return apperrors.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(user.PasswordHash, in.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}
	if in.NewPassword != in.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if in.NewPassword == in.CurrentPassword {
		return apperrors.ErrNoOpChange
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hash)
}

// Setup creates the first administrator. It fails once any user exists.
func (s *accountService) Setup(ctx context.Context, in SetupInput) (*model.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = "Administrator"
	}
	admin := &model.User{
		Name:         name,
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Status:       model.UserStatusActive,
		IsAdmin:      true,
	}

	err = s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if n > 0 {
			return apperrors.ErrSetupLocked
		}
		return repo.Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Leaves returns the user's leaves split into regular and medical.
func (s *accountService) Leaves(ctx context.Context, id uint) (*UserLeaves, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	all, err := s.leaves.List(ctx, repository.Filter{"user_id": id})
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}

	out := &UserLeaves{Leaves: []model.Leave{}, MedicalLeaves: []model.Leave{}}
	for _, l := range all {
		if strings.EqualFold(l.Kind, model.LeaveKindMedical) {
			out.MedicalLeaves = append(out.MedicalLeaves, l)
		} else {
			out.Leaves = append(out.Leaves, l)
		}
	}
	return out, nil
}

func (s *accountService) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check email: %w", err)
	case existing.ID != selfID:
		return apperrors.ErrEmailTaken
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
