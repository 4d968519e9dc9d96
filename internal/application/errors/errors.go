// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"
	"io/fs"
)

// SourceErrorKind classifies input source failures.
type SourceErrorKind string

const (
	// SourceNotFound means the input file does not exist.
	SourceNotFound SourceErrorKind = "not_found"
	// SourceUnreadable covers permission, decoding, syntax and I/O failures.
	SourceUnreadable SourceErrorKind = "unreadable"
)

// SourceError indicates the input file could not be read.
type SourceError struct {
	Cause error
	Path  string
	Kind  SourceErrorKind
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s (%s): %v", e.Path, e.Kind, e.Cause)
	}
	return fmt.Sprintf("source %s (%s)", e.Path, e.Kind)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// NewSourceError classifies cause: fs.ErrNotExist becomes SourceNotFound,
// anything else SourceUnreadable.
func NewSourceError(path string, cause error) *SourceError {
	kind := SourceUnreadable
	if errors.Is(cause, fs.ErrNotExist) {
		kind = SourceNotFound
	}
	return &SourceError{Path: path, Kind: kind, Cause: cause}
}

// IsNotFound reports whether err is a SourceError of kind SourceNotFound.
func IsNotFound(err error) bool {
	var se *SourceError
	return errors.As(err, &se) && se.Kind == SourceNotFound
}

// ValidationError indicates configuration or input validation failed.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ConfigurationError indicates a config file or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
