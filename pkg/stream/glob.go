package stream

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs resolves a mix of literal paths and glob patterns into a
// sorted list of unique file paths. A pattern that matches nothing is kept
// as a literal path, so opening it later surfaces a real file-not-found
// error instead of the file silently vanishing from the run.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(files)
	return files, nil
}
