// Package report builds disk usage reports for a single directory.
//
// It enumerates the immediate children of a target directory, sums
// subdirectory contents recursively using fastwalk, and produces an
// ordered list of entries capped by a synthetic grand total.
package report
