// Package stats accumulates summary statistics over parsed log records.
package stats

import (
	"sort"

	"displog/pkg/logcat"
)

// Aggregator accumulates record counts across batches. It is not safe for
// concurrent use; feed it from a single consumer.
type Aggregator struct {
	records   int
	byDisplay map[logcat.Display]int
	byLevel   map[string]int
	byTag     map[string]int
}

// TagCount pairs a tag with its occurrence count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		byDisplay: make(map[logcat.Display]int),
		byLevel:   make(map[string]int),
		byTag:     make(map[string]int),
	}
}

// Add accumulates one batch of records.
func (a *Aggregator) Add(batch []logcat.Record) {
	for _, rec := range batch {
		a.records++
		a.byDisplay[rec.Display]++
		a.byLevel[rec.Level]++
		a.byTag[rec.Tag]++
	}
}

// Records returns the total number of records seen.
func (a *Aggregator) Records() int {
	return a.records
}

// ByDisplay returns record counts keyed by display surface.
func (a *Aggregator) ByDisplay() map[logcat.Display]int {
	out := make(map[logcat.Display]int, len(a.byDisplay))
	for k, v := range a.byDisplay {
		out[k] = v
	}
	return out
}

// ByLevel returns record counts keyed by severity code.
func (a *Aggregator) ByLevel() map[string]int {
	out := make(map[string]int, len(a.byLevel))
	for k, v := range a.byLevel {
		out[k] = v
	}
	return out
}

// TopTags returns the n most frequent tags, most frequent first. Ties are
// broken alphabetically for deterministic output.
func (a *Aggregator) TopTags(n int) []TagCount {
	tags := make([]TagCount, 0, len(a.byTag))
	for tag, count := range a.byTag {
		tags = append(tags, TagCount{Tag: tag, Count: count})
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	if n > 0 && len(tags) > n {
		tags = tags[:n]
	}
	return tags
}
