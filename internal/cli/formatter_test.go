package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dsum/internal/report"
)

func TestPrintGrid(t *testing.T) {
	entries := []report.Entry{
		{Size: 0, Name: "c", Kind: report.KindDir},
		{Size: 500, Name: "a", Kind: report.KindFile},
		{Size: 2000, Name: "b", Kind: report.KindFile},
		{Size: 2500, Name: report.TotalLabel, Kind: report.KindTotal},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintGrid(entries, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	require.Contains(t, lines[0], "c")
	require.Contains(t, lines[0], "0.000 B")
	require.Contains(t, lines[1], "a")
	require.Contains(t, lines[1], "500.000 B")
	require.Contains(t, lines[2], "b")
	require.Contains(t, lines[2], "1.953 KiB")

	// The total row comes last and carries no glyph.
	require.Contains(t, lines[3], report.TotalLabel)
	require.Contains(t, lines[3], "2.441 KiB")
	require.NotContains(t, lines[3], report.KindDir.Glyph())
	require.NotContains(t, lines[3], report.KindFile.Glyph())
}

func TestPrintGridAlignsColumns(t *testing.T) {
	entries := []report.Entry{
		{Size: 1, Name: "short", Kind: report.KindFile},
		{Size: 2, Name: "a-much-longer-name", Kind: report.KindFile},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintGrid(entries, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// Size column starts at the same offset on every row.
	require.Equal(t, strings.Index(lines[0], "1.000 B"), strings.Index(lines[1], "2.000 B"))
}
