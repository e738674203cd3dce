package utils

import (
	"errors"
	"strings"
)

// ErrRecordNotFound is returned by stores when no record matches the id.
var ErrRecordNotFound = errors.New("record not found")

type FieldViolation struct {
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a request, never a subset.
type ValidationError struct {
	Context    string
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	msg := "Validation failed"
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	if len(fields) > 0 {
		msg += ": " + strings.Join(fields, ", ")
	}
	return msg
}

func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Not found"
	}
	return e.Resource + " not found"
}

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

// StoreError wraps an unexpected persistence failure. The underlying message
// is what clients see.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op + ": store failure"
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// WrapStoreError leaves nil, ErrRecordNotFound and already-typed errors as is.
func WrapStoreError(op string, err error) error {
	if err == nil || errors.Is(err, ErrRecordNotFound) {
		return err
	}
	var storeErr *StoreError
	var dupErr *DuplicateError
	if errors.As(err, &storeErr) || errors.As(err, &dupErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
