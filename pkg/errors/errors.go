package apperrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ValidationError covers missing or malformed required fields.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// ConflictError covers uniqueness violations (duplicate username, email,
// category name).
type ConflictError struct {
	message string
	code    string // PostgreSQL error code (e.g., "23505")
}

func (e *ConflictError) Error() string {
	if e.code == "" {
		return e.message
	}
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{message: message}
}

// NotFoundError covers lookups of entities that do not exist.
type NotFoundError struct {
	message string
}

func (e *NotFoundError) Error() string {
	return e.message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{message: message}
}

// AuthError covers failed password checks and rejected tokens.
type AuthError struct {
	message string
}

func (e *AuthError) Error() string {
	return e.message
}

func NewAuthError(message string) *AuthError {
	return &AuthError{message: message}
}

// WrapDBError maps a PostgreSQL error to the taxonomy. Unique violations
// become ConflictError, everything else stays a wrapped store error.
func WrapDBError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return &ConflictError{message: message, code: string(pqErr.Code)}
	}
	return fmt.Errorf("%s: %w", message, err)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}
