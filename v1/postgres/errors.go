package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Common database error types that can be used by consumers of this package.
// These abstract away the underlying driver-specific error details.
var (
	// ErrRecordNotFound is returned when a query doesn't find any matching records.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert or update violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key violation")

	// ErrForeignKey is returned when an operation violates a foreign key constraint.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrInvalidData is returned when the data being saved doesn't meet validation rules.
	ErrInvalidData = errors.New("invalid data")

	// ErrConnectionUnavailable is returned when no healthy connection is available.
	ErrConnectionUnavailable = errors.New("database connection unavailable")
)

// ErrorCategory classifies a database error for retry and alerting decisions.
type ErrorCategory int

const (
	CategoryUnknown ErrorCategory = iota
	CategoryNotFound
	CategoryConstraint
	CategoryValidation
	CategoryConnection
	CategoryTimeout
)

// TranslateError converts GORM/driver-specific errors into standardized application
// errors, allowing callers to handle errors in a database-agnostic way.
func (p *Postgres) TranslateError(err error) error {
	return TranslateError(err)
}

// TranslateError is the package-level equivalent of (*Postgres).TranslateError,
// usable from contexts that only have a raw error (e.g. inside a Transaction callback).
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	case errors.Is(err, gorm.ErrInvalidData):
		return ErrInvalidData
	}

	return err
}

// GetErrorCategory returns the category of the given error.
func (p *Postgres) GetErrorCategory(err error) ErrorCategory {
	switch {
	case err == nil:
		return CategoryUnknown
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrRecordNotFound):
		return CategoryNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, ErrDuplicateKey),
		errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, ErrForeignKey):
		return CategoryConstraint
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, ErrInvalidData):
		return CategoryValidation
	case errors.Is(err, context.DeadlineExceeded):
		return CategoryTimeout
	case errors.Is(err, ErrConnectionUnavailable):
		return CategoryConnection
	default:
		return CategoryUnknown
	}
}

// IsRetryable reports whether a failed operation is safe to retry unmodified.
func (p *Postgres) IsRetryable(err error) bool {
	switch p.GetErrorCategory(err) {
	case CategoryConnection, CategoryTimeout:
		return true
	default:
		return false
	}
}

// IsTemporary reports whether the error reflects a transient condition rather
// than a structural problem with the request.
func (p *Postgres) IsTemporary(err error) bool {
	return p.IsRetryable(err)
}

// IsCritical reports whether the error indicates the connection itself is unusable
// and requires reconnection rather than a simple retry.
func (p *Postgres) IsCritical(err error) bool {
	return p.GetErrorCategory(err) == CategoryConnection
}
