// SPDX-License-Identifier: MIT

// Package config resolves sparsemat settings: documented defaults, then an
// optional TOML file, then SPARSEMAT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "sparsemat.toml"

// Value types understood by the CLI.
const (
	ValueInt64   = "int64"
	ValueFloat64 = "float64"
)

// Pretty styles understood by the CLI.
const (
	StylePlain = "plain"
	StyleTable = "table"
)

// ErrInvalid marks a setting outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved CLI settings.
type Config struct {
	ValueType    string `toml:"value_type" env:"SPARSEMAT_VALUE_TYPE"`
	StrictAccess bool   `toml:"strict_access" env:"SPARSEMAT_STRICT_ACCESS"`
	PrettyStyle  string `toml:"pretty_style" env:"SPARSEMAT_PRETTY_STYLE"`
	LogLevel     string `toml:"log_level" env:"SPARSEMAT_LOG_LEVEL"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		ValueType:    ValueFloat64,
		StrictAccess: true,
		PrettyStyle:  StylePlain,
		LogLevel:     "info",
	}
}

// Load resolves the configuration.
// An empty path falls back to DefaultFile, which may be absent; an explicit
// path must exist. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	file, explicit := path, path != ""
	if !explicit {
		file = DefaultFile
	}
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// ParseEnv applies environment overrides onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if !slices.Contains([]string{ValueInt64, ValueFloat64}, c.ValueType) {
		return fmt.Errorf("%w: value_type %q", ErrInvalid, c.ValueType)
	}
	if !slices.Contains([]string{StylePlain, StyleTable}, c.PrettyStyle) {
		return fmt.Errorf("%w: pretty_style %q", ErrInvalid, c.PrettyStyle)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Write encodes c as TOML to path, for `sparsemat config init`.
func (c Config) Write(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return f.Close()
}
