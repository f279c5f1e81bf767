package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. All of them are
// recoverable at the conversation level: the caller decides whether
// to re-prompt the user.
var (
	// ErrItemNotFound indicates a referenced item name could not be
	// resolved against known items.
	ErrItemNotFound = errors.New("item not found")

	// ErrInsufficientStock indicates a requested decrease exceeds the
	// current quantity. The ledger is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrValidation indicates a required entity is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidReportType indicates an unrecognised report kind.
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrLowConfidence indicates classifier confidence fell below the
	// configured threshold. Distinct from a structurally invalid command.
	ErrLowConfidence = errors.New("command not understood")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested record does not exist in storage.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a record already exists in storage.
	ErrAlreadyExists = errors.New("already exists")
)

// ItemNotFoundError carries the name that failed to resolve.
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.Name)
}

// Unwrap allows errors.Is(err, ErrItemNotFound).
func (e *ItemNotFoundError) Unwrap() error { return ErrItemNotFound }

// InsufficientStockError carries available vs requested amounts.
type InsufficientStockError struct {
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d",
		e.Name, e.Available, e.Requested)
}

// Unwrap allows errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError names the missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidReportTypeError carries the rejected kind.
type InvalidReportTypeError struct {
	Kind string
}

func (e *InvalidReportTypeError) Error() string {
	return fmt.Sprintf("invalid report type %q: valid types are %v", e.Kind, ValidReportTypes())
}

// Unwrap allows errors.Is(err, ErrInvalidReportType).
func (e *InvalidReportTypeError) Unwrap() error { return ErrInvalidReportType }

// LowConfidenceError carries the confidence that fell short.
type LowConfidenceError struct {
	Confidence float64
	Threshold  float64
}

func (e *LowConfidenceError) Error() string {
	return fmt.Sprintf("command not understood (confidence %.2f below %.2f)",
		e.Confidence, e.Threshold)
}

// Unwrap allows errors.Is(err, ErrLowConfidence).
func (e *LowConfidenceError) Unwrap() error { return ErrLowConfidence }
