package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents dupfinder configuration options.
// Output settings pre-answer the interactive prompts; anything left empty is asked for.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written when FileLogging is on
	LogDir string `yaml:"log_dir"`

	// FileLogging writes diagnostics to LogDir in addition to stderr
	FileLogging bool `yaml:"file_logging"`

	// Color controls colored console output (auto, always, never)
	Color string `yaml:"color"`

	// OutputMode selects where the report goes: c (console), f (file), b (both).
	// The long forms console, file and both are accepted too.
	OutputMode string `yaml:"output_mode"`

	// OutputPath is the report file used by the f and b output modes
	OutputPath string `yaml:"output_path"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		LogDir:      ".dupfinder/logs",
		FileLogging: false,
		Color:       "auto",
		OutputMode:  "",
		OutputPath:  "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.FileLogging {
		cfg.FileLogging = fileCfg.FileLogging
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.OutputMode != "" {
		cfg.OutputMode = fileCfg.OutputMode
	}
	if fileCfg.OutputPath != "" {
		cfg.OutputPath = fileCfg.OutputPath
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .dupfinder/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".dupfinder", "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, outputMode *string, outputPath *string, fileLogging *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if outputMode != nil {
		c.OutputMode = *outputMode
	}
	if outputPath != nil {
		c.OutputPath = *outputPath
	}
	if fileLogging != nil {
		c.FileLogging = *fileLogging
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	switch strings.ToLower(c.OutputMode) {
	case "", "c", "f", "b", "console", "file", "both":
	default:
		return fmt.Errorf("invalid output_mode %q, must be one of: c, f, b", c.OutputMode)
	}

	if c.FileLogging && c.LogDir == "" {
		return fmt.Errorf("log_dir cannot be empty when file_logging is enabled")
	}

	return nil
}
