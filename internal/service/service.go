package service

import (
	"fmt"

	apperrors "roster/internal/errors"
	"roster/internal/worker"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

// Validator validates struct tags. *validator.Validate satisfies it.
type Validator interface {
	Struct(s interface{}) error
}

// Checker is implemented by models with cross-field rules.
type Checker interface {
	Check() error
}

// Submitter hands work to the background pool.
type Submitter interface {
	Submit(job worker.Job) error
}

// validate runs tag validation and the model's own Check, if any.
func validate(v Validator, entity interface{}) error {
	if v != nil {
		if err := v.Struct(entity); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	if c, ok := entity.(Checker); ok {
		if err := c.Check(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	return nil
}
