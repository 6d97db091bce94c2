package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the persistence boundary.
var (
	ErrDuplicateSKU    = errors.New("SKU already exists")
	ErrProductNotFound = errors.New("product not found")
)

// FieldError describes one failed validation rule on a request field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// FailureKind classifies creation failures for callers.
type FailureKind string

const (
	// ValidationFailed covers structural and policy rule violations.
	// User-correctable; carries one or more field-level messages.
	ValidationFailed FailureKind = "validation_failed"

	// ConstraintViolation means the store-enforced SKU uniqueness lost a
	// race at insert time. Surfaced with the same shape as a duplicate-SKU
	// validation failure.
	ConstraintViolation FailureKind = "constraint_violation"

	// UnexpectedFailure covers any other store or collaborator error.
	// Not user-correctable; details stay in the log.
	UnexpectedFailure FailureKind = "unexpected_failure"
)

// CreationError is the typed failure returned by the creation flow.
type CreationError struct {
	Kind   FailureKind
	Fields []FieldError
	cause  error
}

func (e *CreationError) Error() string {
	if len(e.Fields) > 0 {
		msgs := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			msgs[i] = f.String()
		}
		return fmt.Sprintf("%s: %s", e.Kind, strings.Join(msgs, "; "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return string(e.Kind)
}

func (e *CreationError) Unwrap() error {
	return e.cause
}

// NewValidationError wraps aggregated field errors.
func NewValidationError(fields ...FieldError) *CreationError {
	return &CreationError{Kind: ValidationFailed, Fields: fields}
}

// NewConstraintViolation reports a uniqueness race lost at insert time.
func NewConstraintViolation(cause error) *CreationError {
	return &CreationError{
		Kind:   ConstraintViolation,
		Fields: []FieldError{{Field: "sku", Message: ErrDuplicateSKU.Error()}},
		cause:  cause,
	}
}

// NewUnexpectedFailure wraps a collaborator error without leaking its details
// into field messages.
func NewUnexpectedFailure(cause error) *CreationError {
	return &CreationError{Kind: UnexpectedFailure, cause: cause}
}

// AsCreationError extracts a CreationError from an error chain.
func AsCreationError(err error) (*CreationError, bool) {
	var cerr *CreationError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
