package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	gib := float64(1 << 30)

	tests := []struct {
		input    string
		expected int64
	}{
		{"4.01 GiB", int64(4.01 * gib)},
		{"700 MiB", 700 << 20},
		{"1.5 GB", int64(1.5 * gib)},
		{"512 KiB", 512 << 10},
		{"2 TiB", 2 << 40},
		{"100 B", 100},
		{"1.2 gib", int64(1.2 * gib)},
		{"350\u00a0MiB", 350 << 20},
		{"Unknown", 0},
		{"", 0},
		{"lots", 0},
		{"1.2.3 GiB", 0},
		{"99999999999999 TiB", math.MaxInt64},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseSize(test.input), "input %q", test.input)
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 252, ParseCount("252"))
	assert.Equal(t, 7, ParseCount(" 7 "))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("n/a"))
	assert.Equal(t, 0, ParseCount("-3"))
	assert.Equal(t, 0, ParseCount("1,024"))
}

func TestNormalizeSpaces(t *testing.T) {
	assert.Equal(t, "4.01 GiB", NormalizeSpaces("\u00a04.01\u00a0GiB "))
}
