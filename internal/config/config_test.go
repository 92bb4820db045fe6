// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t) // no sparsemat.toml here

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, log.InfoLevel, lvl)
}

func TestLoadFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("value_type = \"int64\"\nstrict_access = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ValueInt64, cfg.ValueType)
	require.False(t, cfg.StrictAccess)
	require.Equal(t, StylePlain, cfg.PrettyStyle) // untouched key keeps default
}

func TestLoadDefaultFilePickedUp(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(DefaultFile, []byte("pretty_style = \"table\"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, StyleTable, cfg.PrettyStyle)
}

func TestLoadExplicitMissing(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(DefaultFile, []byte("value_type = \n"), 0o644))

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestEnvOverridesFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(DefaultFile, []byte("value_type = \"int64\"\n"), 0o644))
	t.Setenv("SPARSEMAT_VALUE_TYPE", "float64")
	t.Setenv("SPARSEMAT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ValueFloat64, cfg.ValueType)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, lvl)
}

func TestParseEnvError(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SPARSEMAT_STRICT_ACCESS", "not-a-bool")

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"value type": func(c *Config) { c.ValueType = "complex128" },
		"style":      func(c *Config) { c.PrettyStyle = "fancy" },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	require.NoError(t, Default().Validate())
}

func TestWriteThenLoad(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "out.toml")

	want := Default()
	want.ValueType = ValueInt64
	want.PrettyStyle = StyleTable
	require.NoError(t, want.Write(path))
	require.Error(t, want.Write(path), "existing file is never overwritten")

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
