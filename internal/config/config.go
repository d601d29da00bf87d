package config

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Manifest string        `mapstructure:"manifest" yaml:"manifest"`
	Output   OutputConfig  `mapstructure:"output" yaml:"output"`
	Catalog  CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Prompt   PromptConfig  `mapstructure:"prompt" yaml:"prompt"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// CatalogConfig points at an external catalog. Empty paths select the
// bundled catalog and documentation.
type CatalogConfig struct {
	Path    string `mapstructure:"path" yaml:"path"`
	DocsDir string `mapstructure:"docs_dir" yaml:"docs_dir"`
}

// PromptConfig contains selection prompt settings
type PromptConfig struct {
	DefaultVariant string `mapstructure:"default_variant" yaml:"default_variant"`
	Accessible     bool   `mapstructure:"accessible" yaml:"accessible"`
	Theme          string `mapstructure:"theme" yaml:"theme"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, resetting empty values to defaults
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		c.Manifest = DefaultManifest
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Prompt.DefaultVariant == "" {
		c.Prompt.DefaultVariant = DefaultVariant
	}
	if _, err := domain.ParseVariant(c.Prompt.DefaultVariant); err != nil {
		return domain.NewValidationError("prompt.default_variant", fmt.Sprintf("%q is not full or tiny", c.Prompt.DefaultVariant))
	}
	if c.Prompt.Theme == "" {
		c.Prompt.Theme = DefaultTheme
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// Variant returns the validated default variant
func (c *Config) Variant() domain.Variant {
	v, err := domain.ParseVariant(c.Prompt.DefaultVariant)
	if err != nil {
		return domain.VariantFull
	}
	return v
}

// UsesBundledCatalog reports whether no external catalog is configured
func (c *Config) UsesBundledCatalog() bool {
	return strings.TrimSpace(c.Catalog.Path) == ""
}
