package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrValidation         = errors.New("validation error")
)

// Custom error type with context
type AppError struct {
	Code    string
	Message string
	Fields  []string
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

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Err: ErrUnauthorized}
}

func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, Err: ErrForbidden}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password", Err: ErrInvalidCredentials}
}

func EmailExists(msg string) *AppError {
	return &AppError{Code: "EMAIL_EXISTS", Message: msg, Err: ErrEmailExists}
}

func Validation(msg string, fields ...string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, Fields: fields, Err: ErrValidation}
}

// ValidationFields builds a validation error whose message enumerates the
// offending fields, e.g. "invalid or missing fields: title, price".
func ValidationFields(fields []string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "invalid or missing fields: " + strings.Join(fields, ", "),
		Fields:  fields,
		Err:     ErrValidation,
	}
}

func InvalidID(msg string) *AppError {
	return &AppError{Code: "INVALID_ID", Message: msg, Fields: []string{"id"}, Err: ErrValidation}
}
