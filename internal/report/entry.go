package report

// TotalLabel is the name given to the synthetic summary entry appended
// to every report.
const TotalLabel = "Total"

// Kind classifies a report entry for presentation.
type Kind uint8

const (
	// KindFile is a regular file directly inside the target directory.
	KindFile Kind = iota
	// KindDir is a subdirectory, sized by recursive aggregation.
	KindDir
	// KindTotal is the synthetic summary row.
	KindTotal
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "total"
	}
}

// Glyph returns the marker rendered in front of the entry name.
// The total row carries no glyph.
func (k Kind) Glyph() string {
	switch k {
	case KindFile:
		return ""
	case KindDir:
		return ""
	default:
		return ""
	}
}

// Entry is one reportable row: a file, a directory, or the synthetic
// total. Entries are ephemeral; they live only between a build and the
// print that consumes it.
type Entry struct {
	// Size is the entry size in bytes.
	Size uint64
	// Name is the display label (the filesystem entry name, or TotalLabel).
	Name string
	// Kind distinguishes files, directories and the total row.
	Kind Kind
}
