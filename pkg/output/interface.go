package output

import (
	"context"
	"io"
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes run metadata and tag statistics.
	Verbose bool

	// Quiet limits output to the summary line.
	Quiet bool
}

// Formatter renders a Report to a writer.
type Formatter interface {
	// Format renders the report.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name.
	Name() string
}
