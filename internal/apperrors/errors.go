package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateNotFound indicates that no exchange rate satisfies a lookup.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrConversionUnavailable indicates a local-currency conversion was requested
// on a balance sheet that carries reference amounts only.
var ErrConversionUnavailable = errors.New("conversion unavailable for reference-only balance sheet")

// ErrPermissionDenied indicates the acting user may not mutate the record.
var ErrPermissionDenied = errors.New("permission denied")

// ErrForbidden is kept as an alias so callers can match either name.
var ErrForbidden = ErrPermissionDenied

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps an infrastructure failure with an HTTP-ish status code.
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

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error wrapping ErrNotFound with context.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// ValidationError collects field-level problems. It unwraps to ErrValidation.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError creates a ValidationError holding a single problem.
func NewValidationError(field, problem string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, problem)
	return v
}

// Add records a problem against a field.
func (v *ValidationError) Add(field, problem string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], problem)
}

// HasErrors reports whether any problem was recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

// OrNil returns v as an error when it holds problems, nil otherwise.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v.Fields[k], ", "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrors extracts the field map from err when it is a ValidationError.
func FieldErrors(err error) (map[string][]string, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Fields, true
	}
	return nil, false
}
