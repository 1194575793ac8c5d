package logcat

import "regexp"

// All patterns are compiled once at package init and never mutated, so
// they are safe for concurrent use without locking.
var (
	// timestampPattern locates an MM-DD HH:MM:SS.mmm token anywhere in a line.
	timestampPattern = regexp.MustCompile(`(\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}\.\d{3})`)

	// threadtimeSimple matches "PID - - Tag: Message" (threadtime without level).
	threadtimeSimple = regexp.MustCompile(`^(\d+)\s+-\s+-\s+([^:]+):\s+(.*)$`)

	// threadtimeComplex matches "Level - - PID TID Level Tag: Message".
	threadtimeComplex = regexp.MustCompile(`^([VDIWEAF])\s+-\s+-\s+(\d+)\s+(\d+)\s+([VDIWEAF])\s+([^:]+):\s*(.*)$`)

	// levelTag matches "Level/Tag( PID TID ) Message". The parenthesized
	// content may hold one or two id tokens.
	levelTag = regexp.MustCompile(`^([DIWEFV])/([^(]+)\(\s*([^)]*?)\s*\)\s+(.*)$`)

	// displayIDPatterns are tried in order; the first one matching anywhere
	// in the message decides the display id.
	displayIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)displayId[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)display[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)Display\s+(\d+)`),
	}
)

// Shape names reported by DetectShape.
const (
	ShapeThreadtimeSimple  = "threadtime-simple"
	ShapeThreadtimeComplex = "threadtime-complex"
	ShapeLevelTag          = "level-tag"
)
