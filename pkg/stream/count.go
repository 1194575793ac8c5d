package stream

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// CountLines returns the number of lines in the file at path. Lines are
// delimited by '\n'; a trailing line without a terminator still counts.
func CountLines(path string) (int, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 64*1024)
	count := 0
	lastByte := byte('\n')

	for {
		n, err := f.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			lastByte = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if lastByte != '\n' {
		count++
	}
	return count, nil
}
