package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"displog/internal/logging"
	"displog/pkg/stream"
)

// CountOptions holds command-line options for the count command.
type CountOptions struct {
	Output  string
	Verbose bool
}

// fileCount pairs a file with its line count for JSON output.
type fileCount struct {
	File  string `json:"file"`
	Lines int    `json:"lines"`
}

// NewCountCommand creates the count command.
func NewCountCommand() *cobra.Command {
	opts := &CountOptions{}

	cmd := &cobra.Command{
		Use:   "count <log-file|glob ...>",
		Short: "Count lines in capture files",
		Long: `Count physical lines in one or more capture files. This is the same
counting pass the parser runs before streaming, so the numbers match
the progress totals reported during a parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show debug logging")

	return cmd
}

func runCount(args []string, opts *CountOptions) error {
	logging.Setup(opts.Verbose)

	files, err := stream.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding log sources: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no log files matched patterns: %v", args)
	}

	counts := make([]fileCount, 0, len(files))
	total := 0

	for _, file := range files {
		n, err := stream.CountLines(file)
		if err != nil {
			return fmt.Errorf("counting %s: %w", file, err)
		}
		counts = append(counts, fileCount{File: file, Lines: n})
		total += n
	}

	switch opts.Output {
	case "", "text":
		for _, fc := range counts {
			fmt.Printf("%8d  %s\n", fc.Lines, fc.File)
		}
		if len(counts) > 1 {
			fmt.Printf("%8d  total\n", total)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"files": counts,
			"total": total,
		}); err != nil {
			return fmt.Errorf("encoding counts: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	return nil
}
