package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not a valid JSON object
	ErrInvalidFormat = errors.New("manifest must be a valid JSON object")

	// ErrInvalidSection indicates a dependency section is not a name to version map
	ErrInvalidSection = errors.New("dependency section must map names to version strings")
)
