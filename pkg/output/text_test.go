package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"displog/pkg/logcat"
	"displog/pkg/stats"
)

func sampleReport() *Report {
	agg := stats.NewAggregator()
	records := []logcat.Record{
		{
			Timestamp: "01-15 10:00:00.001",
			Level:     "D",
			PID:       "100",
			TID:       "101",
			Tag:       "ClusterService",
			Message:   "started",
			Display:   logcat.DisplayCluster,
		},
		{
			Timestamp: "01-15 10:00:00.002",
			Level:     "-",
			PID:       "200",
			TID:       "-",
			Tag:       "SystemServer",
			Message:   "boot completed",
			Display:   logcat.DisplayMain,
		},
	}
	agg.Add(records)

	return NewReport(agg, records, 3, Metadata{
		Sources:   []string{"/tmp/cap.log"},
		ChunkSize: 1000,
		ParsedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Duration:  125 * time.Millisecond,
	})
}

func TestTextFormatter_Full(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})

	if err := f.Format(context.Background(), sampleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"01-15 10:00:00.001 D 100/101 [Cluster] ClusterService: started",
		"Summary: 3 lines scanned, 2 records parsed",
		"Cluster:",
		"Main:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Quiet: true})

	if err := f.Format(context.Background(), sampleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "DispLog: 3 lines scanned, 2 records parsed") {
		t.Errorf("quiet output missing summary line:\n%s", out)
	}
	if strings.Contains(out, "ClusterService") {
		t.Errorf("quiet output must not contain records:\n%s", out)
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Verbose: true})

	if err := f.Format(context.Background(), sampleReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Top tags:", "Chunk size: 1000", "Duration:"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Name(t *testing.T) {
	if name := NewTextFormatter(FormatOptions{}).Name(); name != "text" {
		t.Errorf("Name() = %q, want text", name)
	}
}
