package logcat

import (
	"reflect"
	"testing"
)

func TestParseLine_ThreadtimeSimple(t *testing.T) {
	rec, ok := ParseLine("01-15 10:23:45.123 1234 - - MyTag: Hello world")
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}

	want := Record{
		Timestamp: "01-15 10:23:45.123",
		Level:     "-",
		PID:       "1234",
		TID:       "-",
		Tag:       "MyTag",
		Message:   "Hello world",
		Display:   DisplayMain,
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("ParseLine() = %+v, want %+v", rec, want)
	}
}

func TestParseLine_ThreadtimeComplex(t *testing.T) {
	rec, ok := ParseLine("01-15 10:23:45.123 D - - 1234 5678 D MyTag: displayId: 1 something")
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}

	want := Record{
		Timestamp: "01-15 10:23:45.123",
		Level:     "D",
		PID:       "1234",
		TID:       "5678",
		Tag:       "MyTag",
		Message:   "displayId: 1 something",
		Display:   DisplayCluster,
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("ParseLine() = %+v, want %+v", rec, want)
	}
}

func TestParseLine_LevelTag(t *testing.T) {
	rec, ok := ParseLine("01-15 10:23:45.123 D/ClusterService( 1234  5678) started")
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}

	want := Record{
		Timestamp: "01-15 10:23:45.123",
		Level:     "D",
		PID:       "1234",
		TID:       "5678",
		Tag:       "ClusterService",
		Message:   "started",
		Display:   DisplayCluster,
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("ParseLine() = %+v, want %+v", rec, want)
	}
}

func TestParseLine_LevelTagSingleID(t *testing.T) {
	rec, ok := ParseLine("01-15 10:23:45.123 I/ActivityManager( 1234 ) Displaying activity")
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}

	if rec.PID != "1234" {
		t.Errorf("PID = %q, want %q", rec.PID, "1234")
	}
	if rec.TID != "-" {
		t.Errorf("TID = %q, want %q (missing tid defaults to placeholder)", rec.TID, "-")
	}
}

func TestParseLine_Rejections(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"whitespace only", "   \t  "},
		{"no timestamp", "MyTag: no timestamp here"},
		{"timestamp with garbage remainder", "01-15 10:23:45.123 complete nonsense here"},
		{"timestamp only", "01-15 10:23:45.123"},
		{"partial timestamp", "01-15 10:23:45 1234 - - MyTag: missing millis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec, ok := ParseLine(tt.line); ok {
				t.Errorf("ParseLine(%q) = %+v, want no match", tt.line, rec)
			}
		})
	}
}

func TestParseLine_Deterministic(t *testing.T) {
	line := "01-15 10:23:45.123 D - - 1234 5678 D MyTag: displayId: 1 something"

	first, ok1 := ParseLine(line)
	second, ok2 := ParseLine(line)

	if ok1 != ok2 || !reflect.DeepEqual(first, second) {
		t.Errorf("ParseLine() not deterministic: %+v vs %+v", first, second)
	}
}

func TestParseLine_StructuralNotSemantic(t *testing.T) {
	// Out-of-range digit groups still satisfy the structural pattern and
	// are accepted as-is.
	rec, ok := ParseLine("01-15 10:23:45.123 99999999999999 - - Tag: msg")
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}
	if rec.PID != "99999999999999" {
		t.Errorf("PID = %q, want raw digit group", rec.PID)
	}
}

func TestParseLine_TrimsTagAndMessage(t *testing.T) {
	rec, ok := ParseLine("  01-15 10:23:45.123 1234 - - SpacedTag :   padded message  ")
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}
	if rec.Tag != "SpacedTag" {
		t.Errorf("Tag = %q, want trimmed %q", rec.Tag, "SpacedTag")
	}
	if rec.Message != "padded message" {
		t.Errorf("Message = %q, want trimmed %q", rec.Message, "padded message")
	}
}

func TestParseBatch_OrderAndCompaction(t *testing.T) {
	lines := []string{
		"01-15 10:00:00.001 100 - - First: a",
		"not a log line",
		"01-15 10:00:00.002 200 - - Second: b",
		"",
		"01-15 10:00:00.003 300 - - Third: c",
	}

	records := ParseBatch(lines)

	if len(records) != 3 {
		t.Fatalf("ParseBatch() returned %d records, want 3", len(records))
	}

	wantTags := []string{"First", "Second", "Third"}
	for i, tag := range wantTags {
		if records[i].Tag != tag {
			t.Errorf("records[%d].Tag = %q, want %q (order must be preserved)", i, records[i].Tag, tag)
		}
	}
}

func TestParseBatch_Empty(t *testing.T) {
	if records := ParseBatch(nil); len(records) != 0 {
		t.Errorf("ParseBatch(nil) returned %d records, want 0", len(records))
	}
}

func TestDetectShape(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		shape string
		ok    bool
	}{
		{"simple", "01-15 10:23:45.123 1234 - - MyTag: msg", ShapeThreadtimeSimple, true},
		{"complex", "01-15 10:23:45.123 D - - 1234 5678 D MyTag: msg", ShapeThreadtimeComplex, true},
		{"level-tag", "01-15 10:23:45.123 D/Service( 12 34) msg", ShapeLevelTag, true},
		{"no timestamp", "MyTag: msg", "", false},
		{"garbage remainder", "01-15 10:23:45.123 garbage", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, ok := DetectShape(tt.line)
			if ok != tt.ok || shape != tt.shape {
				t.Errorf("DetectShape(%q) = (%q, %v), want (%q, %v)", tt.line, shape, ok, tt.shape, tt.ok)
			}
		})
	}
}
