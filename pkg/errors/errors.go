// Package errors provides custom error types for the staffmap system.
// These errors enable programmatic error checking and keep the partial-failure
// semantics of a consolidation run explicit: per-source failures are
// recoverable, a run with zero readable sources is not.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the staffmap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates that a named source or sheet could not be read
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoSources indicates that not a single source could be read;
	// this is the only condition that aborts a consolidation run
	ErrNoSources = errors.New("no sources could be read")

	// ErrHeaderUndetected indicates that header detection scored zero
	// for every candidate row of a sheet
	ErrHeaderUndetected = errors.New("header row undetected")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// SourceError represents a failure to read a named source or sheet.
// It is recoverable: the run skips the source and continues.
type SourceError struct {
	Source string
	Sheet  string
	Err    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("source %s (sheet %s) unavailable: %v", e.Source, e.Sheet, e.Err)
	}
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceError creates a new SourceError
func NewSourceError(source, sheet string, err error) *SourceError {
	return &SourceError{Source: source, Sheet: sheet, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// HeaderError reports that no credible header row was found in a sheet.
// Downstream normalization may still succeed on raw labels, so callers
// usually attach this as a warning rather than failing the source.
type HeaderError struct {
	Source    string
	BestIndex int
	BestScore int
}

// Error implements the error interface
func (e *HeaderError) Error() string {
	return fmt.Sprintf("no header detected in source %s (best row %d scored %d)", e.Source, e.BestIndex, e.BestScore)
}

// Is implements errors.Is support
func (e *HeaderError) Is(target error) bool {
	return target == ErrHeaderUndetected
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "csv", "xlsx"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSourceUnavailable checks if an error indicates an unreadable source
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsHeaderUndetected checks if an error is a header detection failure
func IsHeaderUndetected(err error) bool {
	return errors.Is(err, ErrHeaderUndetected)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
