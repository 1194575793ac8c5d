// Package logcat parses Android Automotive logcat-style log lines into
// structured records and classifies each record by originating display
// surface.
package logcat

// Display identifies the display surface a log line originated from.
type Display string

// Display surfaces recognized by the classifier.
const (
	DisplayMain      Display = "Main"
	DisplayCluster   Display = "Cluster"
	DisplayIVI       Display = "IVI"
	DisplayPassenger Display = "Passenger"

	// DisplayOther covers explicit display ids beyond the known surfaces.
	DisplayOther Display = "Display"
)

// Record is a single parsed log line. Fields the matched line shape does
// not carry hold the placeholder "-"; no field is ever empty.
type Record struct {
	// Timestamp is the raw captured token (MM-DD HH:MM:SS.mmm).
	// It is kept as text, not parsed into a time.Time.
	Timestamp string `json:"timestamp"`

	// Level is the single-character severity code, or "-" if the matched
	// shape carries no level.
	Level string `json:"level"`

	// PID is the process id token, or "-" if absent.
	PID string `json:"pid"`

	// TID is the thread id token, or "-" if absent.
	TID string `json:"tid"`

	// Tag is the trimmed log tag.
	Tag string `json:"tag"`

	// Message is the trimmed remainder of the line.
	Message string `json:"message"`

	// Display is the classified display surface, never empty.
	Display Display `json:"display"`
}
