// Package output provides formatting and output generation for parse results.
package output

import (
	"time"

	"displog/pkg/logcat"
	"displog/pkg/stats"
)

// Report is the complete output of a parse run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Records contains the parsed records, omitted in quiet runs.
	Records []logcat.Record `json:"records,omitempty"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesScanned is the total number of raw lines read.
	LinesScanned int `json:"lines_scanned"`

	// RecordsParsed is the number of lines that produced records.
	RecordsParsed int `json:"records_parsed"`

	// ByDisplay breaks records down by display surface.
	ByDisplay map[logcat.Display]int `json:"by_display,omitempty"`

	// ByLevel breaks records down by severity code.
	ByLevel map[string]int `json:"by_level,omitempty"`

	// TopTags lists the most frequent tags.
	TopTags []stats.TagCount `json:"top_tags,omitempty"`
}

// Metadata provides context about the parse run.
type Metadata struct {
	// Sources lists the log files that were processed.
	Sources []string `json:"sources"`

	// ChunkSize is the batch size used for streaming.
	ChunkSize int `json:"chunk_size"`

	// ParsedAt is when the run started.
	ParsedAt time.Time `json:"parsed_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// NewReport builds a Report from accumulated statistics.
func NewReport(agg *stats.Aggregator, records []logcat.Record, linesScanned int, meta Metadata) *Report {
	return &Report{
		Summary: Summary{
			LinesScanned:  linesScanned,
			RecordsParsed: agg.Records(),
			ByDisplay:     agg.ByDisplay(),
			ByLevel:       agg.ByLevel(),
			TopTags:       agg.TopTags(10),
		},
		Records:  records,
		Metadata: meta,
	}
}

// HasRecords returns true if any records were parsed.
func (r *Report) HasRecords() bool {
	return r.Summary.RecordsParsed > 0
}
