// Package detector samples log files to identify which logcat line shapes
// they contain.
package detector

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"

	"displog/pkg/logcat"
)

// Result holds the outcome of analyzing a log file sample.
type Result struct {
	// SampledLines is the number of non-blank lines sampled.
	SampledLines int

	// MatchedLines is the number of sampled lines matching any shape.
	MatchedLines int

	// Matches lists the shapes that matched, sorted by confidence descending.
	Matches []ShapeMatch
}

// ShapeMatch represents one line shape with its confidence score.
type ShapeMatch struct {
	// Shape is the shape name (see logcat.DetectShape).
	Shape string

	// Confidence is the fraction of sampled lines matching this shape.
	Confidence float64

	// MatchCount is the number of sampled lines that matched.
	MatchCount int

	// SampleLine is an example line that matched.
	SampleLine string
}

// Detector samples log files and scores the recognized line shapes.
type Detector struct {
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{sampleSize: 100}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a log file and returns the shapes it contains.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*Result, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of log lines.
func (d *Detector) DetectFromLines(lines []string) *Result {
	result := &Result{SampledLines: len(lines)}
	if len(lines) == 0 {
		return result
	}

	type shapeStats struct {
		matchCount int
		sampleLine string
	}
	stats := make(map[string]*shapeStats)

	for _, line := range lines {
		shape, ok := logcat.DetectShape(line)
		if !ok {
			continue
		}
		result.MatchedLines++

		if stats[shape] == nil {
			stats[shape] = &shapeStats{sampleLine: strings.TrimSpace(line)}
		}
		stats[shape].matchCount++
	}

	for shape, s := range stats {
		result.Matches = append(result.Matches, ShapeMatch{
			Shape:      shape,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
		})
	}

	// Sort by confidence descending; name as tiebreak for stable output.
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return result.Matches[i].Shape < result.Matches[j].Shape
	})

	return result
}

// sampleFile reads up to sampleSize non-blank lines from the head of a file.
func (d *Detector) sampleFile(_ context.Context, path string) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 -- path is provided by user via CLI
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && len(lines) < d.sampleSize {
		if trimmed := strings.TrimSpace(scanner.Text()); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// BestMatch returns the highest confidence match, or nil if none matched.
func (r *Result) BestMatch() *ShapeMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one shape matched.
func (r *Result) HasMatch() bool {
	return len(r.Matches) > 0
}
