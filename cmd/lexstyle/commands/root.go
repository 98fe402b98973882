// Package commands implements the lexstyle CLI command tree.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dshills/lexstyle/internal/languages"
)

var (
	// Global flags
	appName string
	verbose bool
)

// Execute runs the root command.
func Execute(version string) error {
	return newRootCommand(version).Execute()
}

func newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexstyle",
		Short: "Inspect layered syntax highlighting configuration",
		Long: `lexstyle reads the layered language configuration an editor merges at
runtime: the language registry, per-language lexer/keyword/style files,
and external lexer libraries, across the four standard data directories
(system, user, system non-packaged, user non-packaged).`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&appName, "app", languages.DefaultAppName, "application data subdirectory name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newLexersCommand())

	return rootCmd
}

// newRegistry builds a registry honoring the global flags.
func newRegistry() *languages.Registry {
	return languages.New(
		languages.WithAppName(appName),
		languages.WithLogger(log.Logger),
	)
}
