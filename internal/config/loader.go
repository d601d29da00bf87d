package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LoadOptions selects where configuration files are searched
type LoadOptions struct {
	// ConfigFile is an explicit config file; when set no search happens
	ConfigFile string
	// WorkDir is searched for .llmdocs/config.yaml before the user config dir
	WorkDir string
}

// Load loads configuration from file, bound flags, and defaults.
// Environment variables are not consulted.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	setDefaults(v)

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		v.AddConfigPath(filepath.Join(workDir, ProjectConfigDir))
		v.AddConfigPath(ConfigDir())
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("manifest", DefaultManifest)

	v.SetDefault("output.directory", DefaultOutputDir)

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.docs_dir", "")

	v.SetDefault("prompt.default_variant", DefaultVariant)
	v.SetDefault("prompt.accessible", false)
	v.SetDefault("prompt.theme", DefaultTheme)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
