// Package cli wires the reel commands: the TUI, one-shot suggestion
// queries, the HTTP endpoint, library scans and metadata import.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/config"
)

// options are the persistent flags shared by every command.
type options struct {
	configFile string
	database   string
	debug      bool
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "reel",
		Short: "Search and play your local movies, shows and music",
		Long: `reel indexes local video and audio files, answers search suggestions
from the index and an imported metadata catalog, and keeps a reorderable
playlist.

Without a subcommand it starts the terminal interface.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "extra config file, read last")
	flags.StringVar(&opts.database, "database", "", "database path (overrides config)")
	flags.BoolVar(&opts.debug, "debug", false, "log debug lines")

	root.AddCommand(
		newSuggestCmd(opts),
		newServeCmd(opts),
		newScanCmd(opts),
		newMetadataCmd(opts),
	)
	return root
}

// loadConfig reads the config files and applies flag overrides.
func (o *options) loadConfig() (*config.Config, error) {
	paths := config.DefaultPaths()
	if o.configFile != "" {
		paths = append(paths, o.configFile)
	}
	cfg, err := config.LoadFrom(paths...)
	if err != nil {
		return nil, err
	}
	if o.database != "" {
		cfg.Database = o.database
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, nil
}
