package logcat

import "strings"

// ClassifyDisplay determines the display surface for a log line.
//
// An explicit display id in the message takes priority over tag heuristics:
// id 0 is the main display, 1 the instrument cluster, 2 the IVI unit, and
// any other id the generic Display surface. Without an id, the tag is
// checked case-insensitively for known surface names. Lines matching
// neither belong to the main display.
//
// The result depends only on the two inputs; identical inputs always yield
// the identical category.
func ClassifyDisplay(tag, message string) Display {
	for _, p := range displayIDPatterns {
		m := p.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		switch m[1] {
		case "0":
			return DisplayMain
		case "1":
			return DisplayCluster
		case "2":
			return DisplayIVI
		default:
			return DisplayOther
		}
	}

	tagLower := strings.ToLower(tag)
	switch {
	case strings.Contains(tagLower, "cluster"):
		return DisplayCluster
	case strings.Contains(tagLower, "ivi"), strings.Contains(tagLower, "infotainment"):
		return DisplayIVI
	case strings.Contains(tagLower, "passenger"):
		return DisplayPassenger
	}

	return DisplayMain
}
