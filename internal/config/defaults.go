package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	DefaultManifest  = "package.json"
	DefaultOutputDir = ".llm-docs"

	DefaultVariant = "full"
	DefaultTheme   = "charm"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// ProjectConfigDir is looked up in the working directory
	ProjectConfigDir = ".llmdocs"
)

// ConfigDir returns the user config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".llmdocs"
	}
	return filepath.Join(home, ".llmdocs")
}

// ConfigFilePath returns the user config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: DefaultManifest,
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Prompt: PromptConfig{
			DefaultVariant: DefaultVariant,
			Theme:          DefaultTheme,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
