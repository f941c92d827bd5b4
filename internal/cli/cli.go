// Package cli implements the rackplan command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rackplan/pkg/buildinfo"
	"github.com/matzehuels/rackplan/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and file naming.
	appName = "rackplan"

	// timestampFormat names output files, e.g. layout_20260825_143201.json.
	timestampFormat = "20060102_150405"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogError = log.ErrorLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	root := &cobra.Command{
		Use:   "rackplan",
		Short: "Rackplan computes panel mounting layouts on rafter grids",
		Long: `Rackplan places mounting hardware for rectangular panel arrays on a roof.

Given panel positions, it derives the rafter grid, validates structural
limits (span and cantilever), places mounts where panels cross rafters,
and detects seam joints between neighboring panels in a row.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			if quiet {
				level = LogError
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// =============================================================================
// Config Loading
// =============================================================================

// loadConfig resolves the settings for a command run: defaults when path is
// empty, otherwise the parsed and validated settings file.
func (c *CLI) loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		c.Logger.Debug("loaded settings", "path", path)
	}
	return cfg, nil
}
