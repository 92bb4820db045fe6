// SPDX-License-Identifier: MIT

// Package cli implements the sparsemat command-line interface.
//
// Every command reads or writes the matrix text format:
//
//	<cols> <rows>
//	<col> <row> <value>
//	...
//
// Input comes from a file argument or stdin ("-" or omitted); results go to
// stdout, logs to stderr. The CLI is built using cobra and logs via
// charmbracelet/log; --verbose switches to debug level.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version; main may override it via ldflags.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// flags shared by all commands
	configPath string
	valueType  string
	style      string
	unchecked  bool
	verbose    bool
}

// New creates a CLI logging to w at level, with default configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "sparsemat",
		Short:             "sparsemat inspects and edits sparse matrices in text format",
		Long:              `sparsemat loads sparse matrices from the "<cols> <rows>" + "<col> <row> <value>" text format, renders them as grids, and edits single cells.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.resolveConfig,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&c.valueType, "type", "", "element type: int64 or float64")
	pf.StringVar(&c.style, "style", "", "pretty style: plain or table")
	pf.BoolVar(&c.unchecked, "unchecked", false, "allow get/set outside the declared dimensions")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.newCommand())
	root.AddCommand(c.prettyCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.getCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.configCommand())

	return root
}

// resolveConfig loads the config file and environment, then applies flags.
func (c *CLI) resolveConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.ValueType = c.valueType
	}
	if flags.Changed("style") {
		cfg.PrettyStyle = c.style
	}
	if flags.Changed("unchecked") {
		cfg.StrictAccess = !c.unchecked
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level() // validated above
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Config = cfg
	c.Logger.Debug("configuration resolved",
		"value_type", cfg.ValueType, "strict_access", cfg.StrictAccess, "pretty_style", cfg.PrettyStyle)

	return nil
}
