package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/llmdocs/internal/domain"
	"github.com/quantmind-br/llmdocs/internal/utils"
)

// Loader loads and validates catalog files
type Loader struct {
	validate *validator.Validate
	logger   *utils.Logger
}

// NewLoader creates a new catalog loader. Dropped entries are reported to logger.
func NewLoader(logger *utils.Logger) *Loader {
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	// Filenames are placed directly in the output directory.
	_ = v.RegisterValidation("docfile", func(fl validator.FieldLevel) bool {
		return utils.IsValidFilename(fl.Field().String())
	})

	return &Loader{
		validate: v,
		logger:   logger.WithComponent("catalog"),
	}
}

// Load reads a catalog file from the OS filesystem
func (l *Loader) Load(path string) (*Catalog, error) {
	return l.LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads a catalog file from fsys
func (l *Loader) LoadFS(fsys afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrCatalogUnreadable, ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnreadable, err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a catalog from raw bytes; ext selects JSON or YAML.
// The document must be an object; each entry is decoded and validated on its
// own and dropped with a warning when it is unusable.
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Catalog, error) {
	raw, err := decodeEntries(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnreadable, err)
	}

	entries := make(map[string]domain.CatalogEntry, len(raw))
	for name, decode := range raw {
		var entry domain.CatalogEntry
		if err := decode(&entry); err != nil {
			l.logger.WithPackage(name).Warn().Err(err).Msg("Skipping invalid catalog entry")
			continue
		}
		if err := l.check(name, entry); err != nil {
			l.logger.WithPackage(name).Warn().Err(err).Msg("Skipping invalid catalog entry")
			continue
		}
		entries[name] = entry
	}

	l.logger.Debug().Int("entries", len(entries)).Int("skipped", len(raw)-len(entries)).Msg("Catalog loaded")

	return &Catalog{entries: entries}, nil
}

// entryDecoder decodes one catalog entry into v
type entryDecoder func(v any) error

// decodeEntries splits the document into per-entry decoders so one malformed
// entry does not fail the whole catalog.
func decodeEntries(data []byte, ext string) (map[string]entryDecoder, error) {
	switch strings.ToLower(ext) {
	case ".json":
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if raw == nil {
			return nil, ErrInvalidFormat
		}
		out := make(map[string]entryDecoder, len(raw))
		for name, msg := range raw {
			out[name] = func(v any) error { return json.Unmarshal(msg, v) }
		}
		return out, nil
	case ".yaml", ".yml":
		var raw map[string]yaml.Node
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if raw == nil {
			return nil, ErrInvalidFormat
		}
		out := make(map[string]entryDecoder, len(raw))
		for name, node := range raw {
			out[name] = node.Decode
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}
}

func (l *Loader) check(name string, entry domain.CatalogEntry) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}

	if err := l.validate.Struct(entry); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := strings.ToLower(fe.Field())
			if fe.Tag() == "required" {
				return domain.NewValidationError(field, "filename is required")
			}
			return domain.NewValidationError(field, fmt.Sprintf("%q is not a plain filename", fe.Value()))
		}
		return err
	}
	return nil
}
