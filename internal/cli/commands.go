// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/internal/config"
)

// stdinArg selects standard input explicitly.
const stdinArg = "-"

// maxPrettyCells bounds the grid pretty will render; every cell, stored or
// not, is printed, so the header alone decides the output size.
const maxPrettyCells = 1 << 22

// errGridTooLarge is returned by pretty when rows*cols exceeds maxPrettyCells.
var errGridTooLarge = errors.New("grid too large to render")

// checkGridSize rejects shapes whose cell count exceeds maxPrettyCells.
func checkGridSize(cols, rows uint) error {
	if cols != 0 && rows > maxPrettyCells/cols {
		return fmt.Errorf("%w: %d×%d cells exceed %d", errGridTooLarge, cols, rows, maxPrettyCells)
	}

	return nil
}

// open reads the matrix named by args[idx], or stdin when absent or "-".
func (c *CLI) open(cmd *cobra.Command, args []string, idx int) (session, error) {
	var r io.Reader = cmd.InOrStdin()
	if idx < len(args) && args[idx] != stdinArg {
		f, err := os.Open(args[idx])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		c.Logger.Debug("reading matrix", "file", args[idx])
	}

	return openSession(c.Config, r, c.Logger)
}

// parseIndex parses a column or row argument.
func parseIndex(name, s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}

	return uint(n), nil
}

func parseColRow(args []string) (uint, uint, error) {
	col, err := parseIndex("col", args[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := parseIndex("row", args[1])
	if err != nil {
		return 0, 0, err
	}

	return col, row, nil
}

func (c *CLI) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <cols> <rows>",
		Short: "Write an empty matrix of the given shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, rows, err := parseColRow(args)
			if err != nil {
				return err
			}
			s, err := newSession(c.Config, cols, rows, c.Logger)
			if err != nil {
				return err
			}

			return s.Dump(cmd.OutOrStdout())
		},
	}
}

func (c *CLI) prettyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pretty [file]",
		Short: "Render the matrix as a full grid",
		Long:  "Render every cell row by row. Plain style is tab separated with unset cells as 0; table style draws a bordered table.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd, args, 0)
			if err != nil {
				return err
			}
			if err := checkGridSize(s.Cols(), s.Rows()); err != nil {
				return err
			}
			out := s.Pretty()
			if c.Config.PrettyStyle == config.StyleTable {
				out = renderTable(s.Grid(), s.Cols())
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)

			return err
		},
	}
}

func (c *CLI) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count [file]",
		Short: "Print the number of materialized entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd, args, 0)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Count())

			return err
		},
	}
}

func (c *CLI) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <col> <row> [file]",
		Short: "Print one element (0 when unset)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, row, err := parseColRow(args)
			if err != nil {
				return err
			}
			s, err := c.open(cmd, args, 2)
			if err != nil {
				return err
			}
			v, err := s.Get(col, row)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

			return err
		},
	}
}

func (c *CLI) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <col> <row> <value> [file]",
		Short: "Set one element and write the resulting matrix to stdout",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, row, err := parseColRow(args)
			if err != nil {
				return err
			}
			s, err := c.open(cmd, args, 3)
			if err != nil {
				return err
			}
			if err := s.Set(col, row, args[2]); err != nil {
				return err
			}
			c.Logger.Debug("element set", "col", col, "row", row, "value", args[2])

			return s.Dump(cmd.OutOrStdout())
		},
	}
}

func (c *CLI) normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file]",
		Short: "Rewrite the matrix in canonical row-major order",
		Long:  "Parse the matrix and dump it again: entries sorted row-major, duplicates collapsed (first wins), out-of-bounds entries dropped.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd, args, 0)
			if err != nil {
				return err
			}

			return s.Dump(cmd.OutOrStdout())
		},
	}
}

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a new TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := c.Config.Write(path); err != nil {
				return err
			}
			c.Logger.Info("wrote config", "path", path)

			return nil
		},
	})

	return cmd
}
