// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

// execute runs the root command in a temp dir and returns stdout and logs.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), logs.String(), err
}

const sample = "3 2\n2 0 4\n0 1 1.5\n"

func TestNewCmd(t *testing.T) {
	out, _, err := execute(t, "", "new", "4", "2")
	require.NoError(t, err)
	require.Equal(t, "4 2\n", out)

	_, _, err = execute(t, "", "new", "4", "x")
	require.ErrorContains(t, err, `invalid row "x"`)
}

func TestPrettyCmd(t *testing.T) {
	out, _, err := execute(t, sample, "pretty")
	require.NoError(t, err)
	require.Equal(t, "0\t0\t4\n1.5\t0\t0\n", out)

	out, _, err = execute(t, "2 2\n0 0 5\n1 1 7\n", "--type", "int64", "pretty", "-")
	require.NoError(t, err)
	require.Equal(t, "5\t0\n0\t7\n", out)
}

func TestPrettyCmd_Table(t *testing.T) {
	out, _, err := execute(t, sample, "--style", "table", "pretty")
	require.NoError(t, err)
	require.Contains(t, out, "1.5")
	require.Contains(t, out, "┌")
	require.NotContains(t, out, "\t", "table style replaces the tab grid")
}

func TestPrettyCmd_HugeHeader(t *testing.T) {
	for _, style := range []string{config.StylePlain, config.StyleTable} {
		t.Run(style, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, _, err = execute(t, "4611686018427387904 1\n", "--style", style, "pretty")
			})
			require.ErrorIs(t, err, errGridTooLarge)
		})
	}

	// the shape alone is fine for commands that do not render every cell
	out, _, err := execute(t, "4611686018427387904 1\n", "count")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)
}

func TestCheckGridSize(t *testing.T) {
	require.NoError(t, checkGridSize(0, 1<<62))
	require.NoError(t, checkGridSize(2048, 2048))
	require.ErrorIs(t, checkGridSize(maxPrettyCells, 2), errGridTooLarge)
	require.ErrorIs(t, checkGridSize(1<<40, 1<<40), errGridTooLarge) // product would overflow
}

func TestCountCmd(t *testing.T) {
	out, logs, err := execute(t, "2 2\n0 0 5\n5 5 9\n", "count")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
	require.Contains(t, logs, "dropped out-of-bounds entries")
}

func TestGetCmd(t *testing.T) {
	out, _, err := execute(t, sample, "get", "2", "0")
	require.NoError(t, err)
	require.Equal(t, "4\n", out)

	out, _, err = execute(t, sample, "get", "1", "1")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)

	_, _, err = execute(t, sample, "get", "3", "0")
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetCmd(t *testing.T) {
	out, _, err := execute(t, sample, "set", "--", "1", "1", "-2")
	require.NoError(t, err)
	require.Equal(t, "3 2\n2 0  4\n0 1  1.5\n1 1  -2\n", out)

	_, _, err = execute(t, sample, "--type", "int64", "set", "1", "1", "2.5")
	require.Error(t, err) // 1.5 in the input is not an int64 either
	require.ErrorIs(t, err, matrix.ErrParse)

	_, _, err = execute(t, "2 2\n", "--type", "int64", "set", "0", "0", "2.5")
	require.ErrorContains(t, err, `value "2.5"`)

	_, _, err = execute(t, sample, "set", "9", "9", "1")
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	out, _, err = execute(t, sample, "--unchecked", "set", "9", "9", "1")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "9 9  1\n"))
}

func TestNormalizeCmd_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 3\n2 2 1\n0 0 2\n2 2 3\n7 0 1\n"), 0o644))

	out, _, err := execute(t, "", "normalize", path)
	require.NoError(t, err)
	require.Equal(t, "3 3\n0 0  2\n2 2  1\n", out)

	_, _, err = execute(t, "", "normalize", filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("value_type = \"int64\"\n"), 0o644))

	_, _, err := execute(t, sample, "--config", path, "pretty")
	require.ErrorIs(t, err, matrix.ErrParse, "1.5 is rejected as int64")

	out, _, err := execute(t, sample, "--config", path, "--type", "float64", "count")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)

	_, _, err = execute(t, sample, "--type", "complex", "count")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigInitCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.toml")

	_, logs, err := execute(t, "", "--style", "table", "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, logs, "wrote config")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.StyleTable, cfg.PrettyStyle)
}

func TestVerboseLogsDebug(t *testing.T) {
	_, logs, err := execute(t, sample, "-v", "count")
	require.NoError(t, err)
	require.Contains(t, logs, "configuration resolved")
	require.Contains(t, logs, "loaded matrix")
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	require.Zero(t, buf.Len())
	l.Info("shown")
	require.Contains(t, buf.String(), "shown")
}
