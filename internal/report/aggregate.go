package report

import (
	"context"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Aggregate returns the total size in bytes of every regular file
// beneath root. It never fails: unreadable entries contribute nothing,
// and a root that is not a directory yields 0.
func Aggregate(root string) uint64 {
	return NewBuilder(Options{}, nil).aggregate(context.Background(), root)
}

// aggregate performs a full recursive descent of root, summing the
// byte length of every regular file. Directories, symlinks and special
// files contribute nothing; neither does per-directory block overhead.
//
// The walk callback runs on multiple goroutines, so the sum and the
// progress counters are atomics.
func (b *Builder) aggregate(ctx context.Context, root string) uint64 {
	// The walker would happily visit a plain file passed as root;
	// only directories are aggregated.
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return 0
	}

	var total atomic.Uint64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	_ = fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total.Add(uint64(info.Size()))
		b.fileCount.Add(1)
		b.totalBytes.Add(info.Size())

		return nil
	})

	return total.Load()
}
