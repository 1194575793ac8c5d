// Package cli provides the command-line interface for DispLog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"displog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "displog",
		Short: "Parse automotive logcat captures by display surface",
		Long: `DispLog parses Android Automotive logcat captures into structured
records and classifies every entry by originating display surface:
main display, instrument cluster, IVI, or passenger screen.

It recognizes threadtime lines with and without a severity level as
well as the compact Level/Tag(pid tid) layout, and streams arbitrarily
large capture files in bounded memory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewCountCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
