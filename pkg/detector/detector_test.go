package detector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"displog/pkg/logcat"
)

func TestDetectFromLines_MixedShapes(t *testing.T) {
	lines := []string{
		"01-15 10:00:00.001 100 - - TagA: one",
		"01-15 10:00:00.002 200 - - TagB: two",
		"01-15 10:00:00.003 D - - 300 301 D TagC: three",
		"01-15 10:00:00.004 D/TagD( 400 401) four",
		"no timestamp at all",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if result.SampledLines != 5 {
		t.Errorf("SampledLines = %d, want 5", result.SampledLines)
	}
	if result.MatchedLines != 4 {
		t.Errorf("MatchedLines = %d, want 4", result.MatchedLines)
	}
	if len(result.Matches) != 3 {
		t.Fatalf("got %d shape matches, want 3", len(result.Matches))
	}

	best := result.BestMatch()
	if best.Shape != logcat.ShapeThreadtimeSimple {
		t.Errorf("BestMatch().Shape = %q, want %q", best.Shape, logcat.ShapeThreadtimeSimple)
	}
	if best.MatchCount != 2 {
		t.Errorf("BestMatch().MatchCount = %d, want 2", best.MatchCount)
	}
	if best.Confidence != 0.4 {
		t.Errorf("BestMatch().Confidence = %v, want 0.4", best.Confidence)
	}
}

func TestDetectFromLines_NoMatch(t *testing.T) {
	d := New()
	result := d.DetectFromLines([]string{"plain text", "more plain text"})

	if result.HasMatch() {
		t.Error("HasMatch() = true, want false")
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() != nil, want nil")
	}
}

func TestDetectFromLines_Empty(t *testing.T) {
	d := New()
	result := d.DetectFromLines(nil)

	if result.SampledLines != 0 || result.HasMatch() {
		t.Errorf("unexpected result for empty input: %+v", result)
	}
}

func TestDetectFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cap.log")
	content := "01-15 10:00:00.001 100 - - TagA: one\n\n01-15 10:00:00.002 200 - - TagB: two\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d := New(WithSampleSize(10))
	result, err := d.DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}

	// Blank lines are excluded from the sample.
	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2", result.SampledLines)
	}
	if !result.HasMatch() {
		t.Fatal("HasMatch() = false, want true")
	}
	if result.BestMatch().Shape != logcat.ShapeThreadtimeSimple {
		t.Errorf("BestMatch().Shape = %q, want %q", result.BestMatch().Shape, logcat.ShapeThreadtimeSimple)
	}
}

func TestDetectFromFile_NotFound(t *testing.T) {
	d := New()
	if _, err := d.DetectFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.log")); err == nil {
		t.Error("DetectFromFile() expected error for missing file")
	}
}

func TestDetectFromFile_SampleLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cap.log")

	var content string
	for i := 0; i < 50; i++ {
		content += "01-15 10:00:00.001 100 - - Tag: msg\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d := New(WithSampleSize(10))
	result, err := d.DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if result.SampledLines != 10 {
		t.Errorf("SampledLines = %d, want 10 (sample size respected)", result.SampledLines)
	}
}
