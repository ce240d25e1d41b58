package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists,
// e.g. a document number collision. Callers may retry with fresh input.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates that the store failed and the operation was rolled back.
var ErrPersistence = errors.New("persistence error")

// ErrRender indicates that a document payload could not be rendered.
var ErrRender = errors.New("render error")

// AppError carries an HTTP-ish status code alongside a message and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a store failure so it matches errors.Is(err, ErrPersistence).
// The original cause stays available via the message for logging.
func NewPersistenceError(message string, err error) *AppError {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &AppError{Code: 500, Message: message, Err: ErrPersistence}
}
