// Package cli implements the mvnversions command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnversions/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

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

// scanOpts holds the command-line flags of the root command.
type scanOpts struct {
	configPath string // TOML or YAML config file (defaults if empty)
	outputDir  string // overrides output_dir from the config
}

// RootCommand creates the root cobra command. Run without arguments it
// performs a full scan with the default configuration.
func (c *CLI) RootCommand() *cobra.Command {
	var opts scanOpts

	root := &cobra.Command{
		Use:   "mvnversions",
		Short: "Report the latest release of every artifact in a Maven group",
		Long: `mvnversions lists every artifact published under a Maven group on
mvnrepository.com, looks up each artifact's latest stable release, and writes
the results as JSON, a Maven <dependencies> block, CSV and a text summary.

Without flags it scans com.github.javaparser and writes into the current
directory.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runScan(ctx, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	root.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for report files (default from config, else \".\")")

	root.AddCommand(c.completionCommand())

	return root
}
