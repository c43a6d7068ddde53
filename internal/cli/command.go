package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"dsum/internal/report"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var minSizeStr string

	cmd := &cobra.Command{
		Use:   "dsum [path]",
		Short: "Summarize disk usage of a directory's immediate children",
		Long: heredoc.Doc(`
			dsum reports the disk usage of every file and subdirectory
			directly inside a directory, together with a grand total.

			File sizes are taken from metadata as-is. Subdirectory sizes
			are computed by recursively summing every regular file
			beneath them; entries that cannot be read are skipped
			silently. Directory entry overhead is not counted.

			Results are printed smallest first, one row per entry, with
			the total on the last row. Without a path argument the
			current directory is used.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			minSize, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			return logic(report.Options{
				Path:    path,
				MinSize: minSize,
			})
		},
	}

	cmd.Flags().StringVar(&minSizeStr, "min-size", "0B", "Hide entries smaller than this size (e.g., 1KB)")

	return cmd.Execute()
}
