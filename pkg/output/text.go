package output

import (
	"context"
	"fmt"
	"io"

	"displog/pkg/logcat"
)

// displayOrder fixes the rendering order of display surfaces in summaries.
var displayOrder = []logcat.Display{
	logcat.DisplayMain,
	logcat.DisplayCluster,
	logcat.DisplayIVI,
	logcat.DisplayPassenger,
	logcat.DisplayOther,
}

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "DispLog: %d lines scanned, %d records parsed\n",
		report.Summary.LinesScanned,
		report.Summary.RecordsParsed)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, rec := range report.Records {
		f.formatRecord(&rec, w)
	}

	if len(report.Records) > 0 {
		fmt.Fprintln(w, "---")
	}

	fmt.Fprintf(w, "Summary: %d lines scanned, %d records parsed\n",
		report.Summary.LinesScanned,
		report.Summary.RecordsParsed)

	for _, display := range displayOrder {
		if count := report.Summary.ByDisplay[display]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", string(display)+":", count)
		}
	}

	if f.opts.Verbose {
		if len(report.Summary.TopTags) > 0 {
			fmt.Fprintln(w, "Top tags:")
			for _, tc := range report.Summary.TopTags {
				fmt.Fprintf(w, "  %-30s %d\n", tc.Tag, tc.Count)
			}
		}
		fmt.Fprintf(w, "Chunk size: %d\n", report.Metadata.ChunkSize)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatRecord(rec *logcat.Record, w io.Writer) {
	fmt.Fprintf(w, "%s %s %s/%s [%s] %s: %s\n",
		rec.Timestamp,
		rec.Level,
		rec.PID,
		rec.TID,
		rec.Display,
		rec.Tag,
		rec.Message)
}
