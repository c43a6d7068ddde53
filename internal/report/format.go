package report

import "fmt"

// unitLadder is the ordered sequence of binary size suffixes. Values
// large enough to exhaust the ladder fall back to YiB without further
// reduction; with uint64 inputs the ladder tops out around 16 EiB, so
// ZiB and YiB are unreachable in practice.
var unitLadder = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB"}

// FormatSize renders a byte count as a human-readable string with
// three decimal places, e.g. "1.953 KiB".
func FormatSize(size uint64) string {
	value := float64(size)
	suffix := "YiB"

	for _, unit := range unitLadder {
		if value < 1024 {
			suffix = unit

			break
		}

		value /= 1024
	}

	return fmt.Sprintf("%.3f %s", value, suffix)
}
