package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

// DefaultFilename is the manifest looked up in the working directory
const DefaultFilename = "package.json"

// Load reads and parses a manifest file from the given path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrManifestUnreadable, ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrManifestUnreadable, err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses a manifest from raw JSON
func LoadFromBytes(data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: %w", domain.ErrManifestUnreadable, ErrInvalidFormat)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		if errors.Is(err, ErrInvalidSection) {
			return nil, fmt.Errorf("%w: %w", domain.ErrManifestUnreadable, err)
		}
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrManifestUnreadable, ErrInvalidFormat, err)
	}
	return &m, nil
}
