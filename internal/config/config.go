// Package config loads the optional coalprint configuration file and exposes
// it through a process-wide singleton.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the headless commands.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputStyled = "styled"
	// OutputAuto picks styled on a color terminal and table otherwise.
	OutputAuto = "auto"
)

// configFileName is the config file inside the config directory.
const configFileName = "config.yaml"

// Config is the user configuration. Emission factors are not part of it.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig controls the ambient logger.
type LoggingConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format"`
	// File, when set, receives log output instead of stderr.
	File string `yaml:"file"`
}

// OutputConfig controls headless output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Output: OutputConfig{
			DefaultFormat: OutputTable,
		},
	}
}

// New returns the defaults overlaid with the config file (if present) and
// environment overrides. A malformed file is reported on stderr and ignored.
func New() *Config {
	cfg := Default()

	if path, err := FilePath(); err == nil {
		if loadErr := cfg.LoadFile(path); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", loadErr)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg
}

// LoadFile overlays values from the yaml file at path onto c. c is left
// unchanged when the file is malformed or fails validation.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	next := *c
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	*c = next
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) && c.Output.DefaultFormat != "" {
		return fmt.Errorf("output.default_format must be table, json, styled or auto, got %q", c.Output.DefaultFormat)
	}
	return nil
}

// Save writes cfg as yaml to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv("COALPRINT_LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv("COALPRINT_LOG_FORMAT"); ok && v != "" {
		c.Logging.Format = v
	}
}

// IsValidOutputFormat reports whether format is a supported headless output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputTable, OutputJSON, OutputStyled, OutputAuto:
		return true
	default:
		return false
	}
}

// GetOutputFormat returns flagValue when set, otherwise the configured default.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if f := GetGlobalConfig().Output.DefaultFormat; f != "" {
		return f
	}
	return OutputTable
}
