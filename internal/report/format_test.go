package report

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     uint64
		expected string
	}{
		{0, "0.000 B"},
		{1, "1.000 B"},
		{500, "500.000 B"},
		{1000, "1000.000 B"},
		{1023, "1023.000 B"},
		{1024, "1.000 KiB"},
		{1536, "1.500 KiB"},
		{2000, "1.953 KiB"},
		{2500, "2.441 KiB"},
		{1024 * 1024, "1.000 MiB"},
		{1024*1024 + 1024*512, "1.500 MiB"},
		{1024 * 1024 * 1024, "1.000 GiB"},
		{1 << 40, "1.000 TiB"},
		{1 << 50, "1.000 PiB"},
		{1 << 60, "1.000 EiB"},
		{1<<60 + 1<<59, "1.500 EiB"},
		{math.MaxUint64, "16.000 EiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSize(tt.size))
		})
	}
}

func TestFormatSizeShape(t *testing.T) {
	pattern := `^\d+\.\d{3} (B|KiB|MiB|GiB|TiB|PiB|EiB|ZiB|YiB)$`

	sizes := []uint64{0, 1, 999, 1023, 1024, 4096, 123456789, 1<<33 + 7, 1 << 47, 1<<63 - 1, math.MaxUint64}
	for _, size := range sizes {
		assert.Regexp(t, pattern, FormatSize(size), fmt.Sprintf("FormatSize(%d)", size))
	}
}
