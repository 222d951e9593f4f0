package repository

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	apperrors "roster/internal/errors"
)

// Filter restricts List to rows whose columns equal the given values.
// Keys are column names and must come from code, never from the request.
type Filter map[string]interface{}

// Repository is the persistence contract shared by the catalog entities.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, filter Filter) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

type gormRepository[T any] struct {
	db *gorm.DB
}

// New builds a GORM-backed repository for T.
func New[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *gormRepository[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	q := r.db.WithContext(ctx)
	for _, col := range filter.columns() {
		q = q.Where(col+" = ?", filter[col])
	}
	var entities []T
	if err := q.Order("id").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Save(entity).Error)
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// columns returns the filter keys in a stable order.
func (f Filter) columns() []string {
	cols := make([]string, 0, len(f))
	for col := range f {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// translate maps GORM errors onto the domain errors callers match on.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(apperrors.ErrValidation, err)
	default:
		return err
	}
}
