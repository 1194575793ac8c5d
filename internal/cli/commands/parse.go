package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"displog/internal/logging"
	"displog/pkg/config"
	"displog/pkg/logcat"
	"displog/pkg/output"
	"displog/pkg/stats"
	"displog/pkg/stream"
	"displog/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Config    string
	Output    string
	ChunkSize int
	Limit     int
	Display   string
	Verbose   bool
	Quiet     bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <log-file|glob ...>",
		Short: "Parse logcat captures into display-classified records",
		Long: `Parse one or more logcat capture files into structured records.

Each line is matched against the recognized threadtime and Level/Tag
shapes and classified by display surface. Files are streamed in fixed
size chunks, so captures of any size fit in bounded memory. Lines that
match no shape are dropped silently.

When no files are given on the command line, sources from the config
file are used.

Exit codes:
  0 - Records parsed successfully
  1 - No records recognized
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", 0, "Lines buffered per batch (default 1000)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Stop after roughly this many records (0 = no limit)")
	cmd.Flags().StringVarP(&opts.Display, "display", "d", "", "Only keep records for one display (Main|Cluster|IVI|Passenger|Display)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show run details and debug logging")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no records")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_records", "When to fire webhook (on_records|always|never)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
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

	displayFilter, err := parseDisplayFilter(opts.Display)
	if err != nil {
		return err
	}

	agg := stats.NewAggregator()
	var records []logcat.Record
	linesScanned := 0
	start := time.Now()

	processor := stream.NewProcessor(stream.WithChunkSize(chunkSize))
	stopped := false

	for _, file := range files {
		base := linesScanned
		_, err := processor.Process(ctx, file, func(batch []logcat.Record, processed, total int) bool {
			linesScanned = base + processed
			batch = filterDisplay(batch, displayFilter)
			agg.Add(batch)
			if !opts.Quiet {
				records = append(records, batch...)
			}
			if opts.Limit > 0 && agg.Records() >= opts.Limit {
				stopped = true
				return false
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("processing %s: %w", file, err)
		}
		if stopped {
			log.Debug().Str("file", file).Int("records", agg.Records()).Msg("record limit reached")
			break
		}
	}

	report := output.NewReport(agg, records, linesScanned, output.Metadata{
		Sources:   files,
		ChunkSize: chunkSize,
		ParsedAt:  start,
		Duration:  time.Since(start),
	})

	formatter, err := createFormatter(pickOutput(opts.Output, cfg), output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (failures logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report)

	if !report.HasRecords() {
		ExitCode = 1
	}

	return nil
}

// loadConfig loads the config file when given, defaults otherwise.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveSources expands command-line files, falling back to config sources.
func resolveSources(args []string, cfg *config.Config) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Sources
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no log files given (pass files or set sources in the config)")
	}

	files, err := stream.ExpandGlobs(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding log sources: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no log files matched patterns: %v", patterns)
	}
	return files, nil
}

// parseDisplayFilter validates the --display flag value.
func parseDisplayFilter(s string) (logcat.Display, error) {
	switch logcat.Display(s) {
	case "", logcat.DisplayMain, logcat.DisplayCluster, logcat.DisplayIVI,
		logcat.DisplayPassenger, logcat.DisplayOther:
		return logcat.Display(s), nil
	default:
		return "", fmt.Errorf("unknown display %q (use Main, Cluster, IVI, Passenger, or Display)", s)
	}
}

// filterDisplay keeps only records for the given display surface.
// An empty filter keeps everything.
func filterDisplay(batch []logcat.Record, display logcat.Display) []logcat.Record {
	if display == "" {
		return batch
	}
	kept := batch[:0]
	for _, rec := range batch {
		if rec.Display == display {
			kept = append(kept, rec)
		}
	}
	return kept
}

// pickOutput resolves the output format: flag beats config.
func pickOutput(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Output
}

func createFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "", "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ParseOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasRecords()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			log.Info().Str("webhook", name).Int("status", resp.StatusCode).
				Dur("duration", resp.Duration).Msg("webhook sent")
		} else {
			log.Warn().Str("webhook", name).Err(resp.Error).Msg("webhook failed")
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ParseOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnRecords
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire.
func shouldFireWebhook(trigger config.WebhookTrigger, hasRecords bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasRecords
	}
}
