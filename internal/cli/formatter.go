package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dsum/internal/report"
)

const (
	// GridSpacing is the number of spaces between grid columns.
	GridSpacing = 1
)

// PrintGrid renders entries as a grid of three aligned columns:
// glyph marker, name and human-readable size.
func PrintGrid(entries []report.Entry, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, GridSpacing, ' ', 0)

	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Kind.Glyph(), entry.Name, report.FormatSize(entry.Size))
	}

	return w.Flush()
}
