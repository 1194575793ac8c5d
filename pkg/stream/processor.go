// Package stream processes log files in bounded memory, delivering parsed
// record batches to a consumer together with progress information.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"displog/pkg/logcat"
)

// DefaultChunkSize is the number of buffered lines per delivered batch.
const DefaultChunkSize = 1000

// Consumer receives one parsed batch together with progress counters:
// linesProcessed raw lines seen so far out of totalLines. Returning false
// stops the scan after the current batch. The consumer is never invoked
// when the line buffer is empty at end of file.
type Consumer func(batch []logcat.Record, linesProcessed, totalLines int) bool

// Processor reads a log file sequentially, accumulating trimmed non-empty
// lines into fixed-size chunks and parsing each chunk as a batch. Peak
// memory stays bounded by the chunk size regardless of file size.
type Processor struct {
	chunkSize int
}

// Option configures a Processor.
type Option func(*Processor)

// WithChunkSize sets the number of lines buffered per batch (default 1000).
func WithChunkSize(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.chunkSize = n
		}
	}
}

// NewProcessor creates a Processor with the given options.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process streams the file at path through the consumer in two passes: one
// to count lines so progress totals are exact, one to scan and deliver
// parsed batches. The second pass re-reads the file instead of caching it,
// which keeps memory bounded for multi-gigabyte captures.
//
// It returns the number of records delivered across all batches. A consumer
// that returns false or panics stops the scan; records delivered up to that
// point are still counted. Opening the file failing on either pass is the
// only fatal error.
func (p *Processor) Process(ctx context.Context, path string, consumer Consumer) (int, error) {
	totalLines, err := CountLines(path)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := bufio.NewReaderSize(f, 64*1024)
	buffer := make([]string, 0, p.chunkSize)
	delivered := 0
	linesProcessed := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			// A damaged stretch of the file does not fail the whole run;
			// the partial line still counts toward progress.
			log.Warn().Err(readErr).Str("file", path).Int("line", linesProcessed+1).
				Msg("skipping unreadable line")
			if line != "" {
				linesProcessed++
			}
			break
		}
		if line == "" && readErr == io.EOF {
			break
		}

		linesProcessed++
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			buffer = append(buffer, trimmed)
		}

		if len(buffer) >= p.chunkSize {
			batch := logcat.ParseBatch(buffer)
			buffer = buffer[:0]
			delivered += len(batch)

			if !deliver(consumer, batch, linesProcessed, totalLines) {
				return delivered, nil
			}
			if err := ctx.Err(); err != nil {
				return delivered, err
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	// Flush the remainder. The stop signal no longer matters here since
	// there is no more input.
	if len(buffer) > 0 {
		batch := logcat.ParseBatch(buffer)
		delivered += len(batch)
		deliver(consumer, batch, linesProcessed, totalLines)
	}

	return delivered, nil
}

// deliver invokes the consumer, treating a panic as a stop signal so a
// faulty consumer cannot take down the scan.
func deliver(consumer Consumer, batch []logcat.Record, processed, total int) (cont bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("consumer failed, stopping scan")
			cont = false
		}
	}()
	return consumer(batch, processed, total)
}
