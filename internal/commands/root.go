package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/razao-dev/razao/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "razao",
		Short:   "PGC double-entry ledger for back-office bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newAccountsCommand(&dir, &verbose))
	rootCmd.AddCommand(newPostCommand(&dir, &verbose))
	rootCmd.AddCommand(newEntriesCommand(&dir, &verbose))
	rootCmd.AddCommand(newReportCommand(&dir, &verbose))
	rootCmd.AddCommand(newImportCommand(&dir, &verbose))
	rootCmd.AddCommand(newActivityCommand(&dir, &verbose))

	return rootCmd
}

// newLogger builds the console logger commands share.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
