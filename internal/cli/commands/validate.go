package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"displog/internal/logging"
	"displog/pkg/config"
)

// ValidateOptions holds command-line options for the validate command.
type ValidateOptions struct {
	Verbose bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Load and validate a YAML configuration file, reporting the effective
settings after defaults and environment overrides are applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show debug logging")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, opts *ValidateOptions) error {
	logging.Setup(opts.Verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}

	fmt.Printf("Config %s is valid\n", path)
	fmt.Printf("  Sources:    %d\n", len(cfg.Sources))
	fmt.Printf("  Chunk size: %d\n", cfg.ChunkSize)
	fmt.Printf("  Output:     %s\n", cfg.Output)
	fmt.Printf("  Webhooks:   %d\n", len(cfg.Webhooks))

	for _, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}
		fmt.Printf("    %s (%s, timeout %s)\n", name, wh.Trigger, wh.Timeout)
	}

	return nil
}
