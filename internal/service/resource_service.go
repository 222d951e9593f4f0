package service

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "roster/internal/errors"
	"roster/internal/repository"
)

// immutableFields are ignored when a patch is applied.
var immutableFields = []string{"id", "created_at", "updated_at"}

// ResourceService exposes CRUD for a catalog entity.
type ResourceService[T any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, filter repository.Filter) ([]T, error)
	// Update applies a JSON object onto the stored record. Fields absent from
	// the patch keep their stored values.
	Update(ctx context.Context, id uint, patch []byte) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type resourceService[T any] struct {
	repo      repository.Repository[T]
	validator Validator
}

// NewResourceService builds a ResourceService over repo.
func NewResourceService[T any](repo repository.Repository[T], v Validator) ResourceService[T] {
	return &resourceService[T]{repo: repo, validator: v}
}

func (s *resourceService[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := validate(s.validator, entity); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return entity, nil
}

func (s *resourceService[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *resourceService[T]) List(ctx context.Context, filter repository.Filter) ([]T, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *resourceService[T]) Update(ctx context.Context, id uint, patch []byte) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(entity, patch); err != nil {
		return nil, err
	}
	if err := validate(s.validator, entity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	return entity, nil
}

func (s *resourceService[T]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// DecodeNew decodes a JSON object into a fresh T, ignoring immutable fields.
func DecodeNew[T any](body []byte) (*T, error) {
	entity := new(T)
	if err := applyPatch(entity, body); err != nil {
		return nil, err
	}
	return entity, nil
}

// applyPatch decodes the JSON object patch onto dst, skipping immutable fields.
func applyPatch(dst interface{}, patch []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return fmt.Errorf("%w: body must be a JSON object", apperrors.ErrValidation)
	}
	for _, name := range immutableFields {
		delete(fields, name)
	}
	if len(fields) == 0 {
		return nil
	}

	cleaned, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(cleaned, dst); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
