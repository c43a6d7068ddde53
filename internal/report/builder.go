package report

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures report generation.
type Options struct {
	// Path is the directory to report on. Empty means the current directory.
	Path string
	// MinSize hides entries smaller than this many bytes from the
	// report. Hidden entries still count toward the total.
	MinSize uint64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// Builder produces a disk usage report for the immediate children of
// one directory. A Builder is good for a single Build call.
type Builder struct {
	opts Options
	hook func(files, bytes int64)

	fileCount  atomic.Int64
	totalBytes atomic.Int64
}

// NewBuilder creates a Builder with the given options. progressHook,
// if non-nil, is invoked periodically during Build with the number of
// files and bytes seen so far.
func NewBuilder(opts Options, progressHook func(files, bytes int64)) *Builder {
	if opts.Path == "" {
		opts.Path = "."
	}

	return &Builder{opts: opts, hook: progressHook}
}

// startProgressReporter invokes the hook on each tick until ctx is done.
func (b *Builder) startProgressReporter(ctx context.Context) {
	if b.hook == nil {
		return
	}

	interval := b.opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				b.hook(b.fileCount.Load(), b.totalBytes.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Build enumerates the immediate children of the target directory and
// returns one entry per child plus a synthetic total, sorted ascending
// by size with ties kept in encounter order. The total row therefore
// never precedes an entry with a strictly greater size.
//
// Failure to read the target directory itself is the only surfaced
// error. Children whose metadata cannot be read, or whose type is
// neither regular file nor directory, are skipped silently: no entry,
// no contribution to the total.
func (b *Builder) Build(ctx context.Context) ([]Entry, error) {
	children, err := os.ReadDir(b.opts.Path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", b.opts.Path, err)
	}

	// Child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b.startProgressReporter(ctx)

	entries := make([]Entry, 0, len(children)+1)

	var total uint64

	for _, child := range children {
		info, err := child.Info()
		if err != nil {
			continue
		}

		var entry Entry

		switch {
		case info.IsDir():
			entry = Entry{
				Size: b.aggregate(ctx, filepath.Join(b.opts.Path, child.Name())),
				Name: child.Name(),
				Kind: KindDir,
			}
		case info.Mode().IsRegular():
			entry = Entry{
				Size: uint64(info.Size()),
				Name: child.Name(),
				Kind: KindFile,
			}

			b.fileCount.Add(1)
			b.totalBytes.Add(info.Size())
		default:
			// Sockets, devices, symlinks not resolving to file or dir.
			continue
		}

		total += entry.Size
		entries = append(entries, entry)
	}

	if b.opts.MinSize > 0 {
		entries = slices.DeleteFunc(entries, func(e Entry) bool {
			return e.Size < b.opts.MinSize
		})
	}

	entries = append(entries, Entry{Size: total, Name: TotalLabel, Kind: KindTotal})

	slices.SortStableFunc(entries, func(lhs, rhs Entry) int {
		return cmp.Compare(lhs.Size, rhs.Size)
	})

	return entries, nil
}
