package logcat

import "strings"

// ParseLine parses one logcat line into a Record.
//
// It returns false when the line is blank, carries no timestamp token, or
// the text after the timestamp matches none of the recognized shapes.
// Unrecognized lines are dropped, not reported as errors.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, false
	}

	loc := timestampPattern.FindStringIndex(line)
	if loc == nil {
		return Record{}, false
	}
	timestamp := line[loc[0]:loc[1]]
	remaining := strings.TrimSpace(line[loc[1]:])

	// Shape: PID - - Tag: Message
	if m := threadtimeSimple.FindStringSubmatch(remaining); m != nil {
		tag := strings.TrimSpace(m[2])
		message := strings.TrimSpace(m[3])
		return Record{
			Timestamp: timestamp,
			Level:     "-",
			PID:       m[1],
			TID:       "-",
			Tag:       tag,
			Message:   message,
			Display:   ClassifyDisplay(tag, message),
		}, true
	}

	// Shape: Level - - PID TID Level Tag: Message
	if m := threadtimeComplex.FindStringSubmatch(remaining); m != nil {
		tag := strings.TrimSpace(m[5])
		message := strings.TrimSpace(m[6])
		return Record{
			Timestamp: timestamp,
			Level:     m[4], // the second level token is the effective one
			PID:       m[2],
			TID:       m[3],
			Tag:       tag,
			Message:   message,
			Display:   ClassifyDisplay(tag, message),
		}, true
	}

	// Shape: Level/Tag( PID TID ) Message
	if m := levelTag.FindStringSubmatch(remaining); m != nil {
		tag := strings.TrimSpace(m[2])
		message := strings.TrimSpace(m[4])
		pid, tid := "-", "-"
		ids := strings.Fields(m[3])
		if len(ids) > 0 {
			pid = ids[0]
		}
		if len(ids) > 1 {
			tid = ids[1]
		}
		return Record{
			Timestamp: timestamp,
			Level:     m[1],
			PID:       pid,
			TID:       tid,
			Tag:       tag,
			Message:   message,
			Display:   ClassifyDisplay(tag, message),
		}, true
	}

	return Record{}, false
}

// ParseBatch parses an ordered slice of lines, dropping lines that don't
// parse. The relative order of surviving records is preserved.
func ParseBatch(lines []string) []Record {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if rec, ok := ParseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// DetectShape reports which line shape the text after the line's timestamp
// token matches, using the same priority order as ParseLine. It returns
// false for blank lines, lines without a timestamp, and unmatched shapes.
func DetectShape(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	loc := timestampPattern.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	remaining := strings.TrimSpace(line[loc[1]:])

	switch {
	case threadtimeSimple.MatchString(remaining):
		return ShapeThreadtimeSimple, true
	case threadtimeComplex.MatchString(remaining):
		return ShapeThreadtimeComplex, true
	case levelTag.MatchString(remaining):
		return ShapeLevelTag, true
	}
	return "", false
}
