// Package config loads termdrv settings from TOML or YAML files and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by FromEnv
const (
	EnvConfig = "TERMDRV_CONFIG"
	EnvTerm   = "TERM"
)

// Format selects the decoder for a config document
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// Config describes which terminal to drive and how to adjust its description
type Config struct {
	// Term overrides $TERM when set
	Term string `toml:"term" yaml:"term"`

	// Overrides maps capability short names to templates; use the document's
	// own escapes for control bytes ("\u001b[?1049h" in TOML, "\e[?1049h" in YAML)
	Overrides map[string]string `toml:"overrides" yaml:"overrides"`

	// Disable lists capabilities to drop from the loaded description
	Disable []string `toml:"disable" yaml:"disable"`

	Log LogConfig `toml:"log" yaml:"log"`
}

// LogConfig routes diagnostic logging
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// FormatFor picks a format from the file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

// Load reads and decodes a config file
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a config document; unknown keys are rejected
func Decode(data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// Empty document leaves defaults in place
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %d", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects blank capability names
func (c *Config) Validate() error {
	for name := range c.Overrides {
		if strings.TrimSpace(name) == "" {
			return errors.New("overrides: empty capability name")
		}
	}
	for i, name := range c.Disable {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("disable[%d]: empty capability name", i)
		}
	}
	return nil
}

// FromEnv loads the file named by TERMDRV_CONFIG, if any, and fills Term
// from $TERM when the file leaves it empty. On a file error the returned
// config still carries $TERM so callers can continue with defaults.
func FromEnv() (*Config, error) {
	return LoadWithEnv(os.Getenv(EnvConfig))
}

// LoadWithEnv is Load with the FromEnv rules: an empty path yields defaults,
// Term falls back to $TERM, and a file error still returns a usable config
func LoadWithEnv(path string) (*Config, error) {
	cfg := Default()

	var err error
	if path != "" {
		var loaded *Config
		if loaded, err = Load(path); err == nil {
			cfg = loaded
		}
	}

	if cfg.Term == "" {
		cfg.Term = os.Getenv(EnvTerm)
	}
	return cfg, err
}
