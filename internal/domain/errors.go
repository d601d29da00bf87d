package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrManifestUnreadable indicates the project manifest is missing or malformed
	ErrManifestUnreadable = errors.New("manifest unreadable")

	// ErrCatalogUnreadable indicates the documentation catalog could not be loaded
	ErrCatalogUnreadable = errors.New("catalog unreadable")

	// ErrCatalogMiss indicates a dependency has no catalog entry
	ErrCatalogMiss = errors.New("no catalog entry")

	// ErrInvalidVariant indicates an unknown documentation variant
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrAborted indicates the user interrupted the run
	ErrAborted = errors.New("aborted by user")

	// ErrNotInteractive indicates a prompt was required but stdin is not a terminal
	ErrNotInteractive = errors.New("stdin is not a terminal")
)

// CopyError represents a filesystem failure while copying one documentation file
type CopyError struct {
	Name string
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s to %s: %v", e.Name, e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// NewCopyError creates a new CopyError
func NewCopyError(name, path string, err error) *CopyError {
	return &CopyError{
		Name: name,
		Path: path,
		Err:  err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
