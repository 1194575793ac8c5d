package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"displog/internal/logging"
	"displog/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output     string
	SampleSize int
	Verbose    bool
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Identify which logcat line shapes a file contains",
		Long: `Sample the head of a capture file and report which of the recognized
line shapes it contains, with confidence scores.

Exit codes:
  0 - At least one shape recognized
  1 - No recognized shape in the sample
  2 - Runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 0, "Lines to sample (default 100)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show debug logging")

	return cmd
}

func runDetect(cmd *cobra.Command, path string, opts *DetectOptions) error {
	logging.Setup(opts.Verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))
	result, err := d.DetectFromFile(ctx, path)
	if err != nil {
		return fmt.Errorf("sampling %s: %w", path, err)
	}

	switch opts.Output {
	case "", "text":
		printDetectText(path, result)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"file":          path,
			"sampled_lines": result.SampledLines,
			"matched_lines": result.MatchedLines,
			"matches":       result.Matches,
		}); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	if !result.HasMatch() {
		ExitCode = 1
	}

	return nil
}

func printDetectText(path string, result *detector.Result) {
	fmt.Printf("File: %s\n", path)
	fmt.Printf("Sampled %d lines, %d matched\n", result.SampledLines, result.MatchedLines)

	if !result.HasMatch() {
		fmt.Println("No recognized line shape")
		return
	}

	fmt.Println("Shapes:")
	for _, m := range result.Matches {
		fmt.Printf("  %-20s %5.1f%%  (%d lines)\n", m.Shape, m.Confidence*100, m.MatchCount)
		fmt.Printf("    example: %s\n", m.SampleLine)
	}
}
