package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"displog/internal/logging"
	"displog/pkg/logcat"
	"displog/pkg/output"
	"displog/pkg/stats"
	"displog/pkg/stream"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	Config    string
	Output    string
	ChunkSize int
	Verbose   bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <log-file|glob ...>",
		Short: "Summarize captures without keeping records",
		Long: `Aggregate per-display, per-level, and per-tag counts across one or
more capture files. Records are counted and discarded as each chunk
streams through, so memory stays flat regardless of capture size.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", 0, "Lines buffered per batch (default 1000)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show run details and debug logging")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
	logging.Setup(opts.Verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	files, err := resolveSources(args, cfg)
	if err != nil {
		return err
	}

	chunkSize := cfg.ChunkSize
	if opts.ChunkSize > 0 {
		chunkSize = opts.ChunkSize
	}

	agg := stats.NewAggregator()
	linesScanned := 0
	start := time.Now()

	processor := stream.NewProcessor(stream.WithChunkSize(chunkSize))

	for _, file := range files {
		base := linesScanned
		_, err := processor.Process(ctx, file, func(batch []logcat.Record, processed, total int) bool {
			linesScanned = base + processed
			agg.Add(batch)
			return true
		})
		if err != nil {
			return fmt.Errorf("processing %s: %w", file, err)
		}
	}

	report := output.NewReport(agg, nil, linesScanned, output.Metadata{
		Sources:   files,
		ChunkSize: chunkSize,
		ParsedAt:  start,
		Duration:  time.Since(start),
	})

	// Stats always shows the verbose summary block; it has nothing else.
	formatter, err := createFormatter(pickOutput(opts.Output, cfg), output.FormatOptions{
		Verbose: true,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !report.HasRecords() {
		ExitCode = 1
	}

	return nil
}
