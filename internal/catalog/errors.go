package catalog

import "errors"

// Sentinel errors for the catalog package
var (
	// ErrFileNotFound indicates the catalog file does not exist
	ErrFileNotFound = errors.New("catalog file not found")

	// ErrInvalidFormat indicates the catalog is not a valid JSON or YAML mapping
	ErrInvalidFormat = errors.New("catalog must be a JSON or YAML mapping of name to {full, tiny}")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")
)
