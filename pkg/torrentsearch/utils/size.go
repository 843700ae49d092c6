package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// BytesPerGiB converts sizes to the gigabyte unit used by scoring.
	BytesPerGiB = 1 << 30

	// UnknownSize is shown when a listing carries no size text.
	UnknownSize = "Unknown"
)

var sizePattern = regexp.MustCompile(`^([\d.]+)\s*([KMGT]?I?B)`)

// Both decimal and binary spellings use 1024 multipliers, as the index does.
var sizeMultipliers = map[string]float64{
	"B":   1,
	"KB":  1 << 10,
	"MB":  1 << 20,
	"GB":  1 << 30,
	"TB":  1 << 40,
	"KIB": 1 << 10,
	"MIB": 1 << 20,
	"GIB": 1 << 30,
	"TIB": 1 << 40,
}

// ParseSize converts text like "4.01 GiB" to bytes. Unparseable input gives 0.
func ParseSize(size string) int64 {
	size = strings.ToUpper(NormalizeSpaces(size))
	if size == "" || size == strings.ToUpper(UnknownSize) {
		return 0
	}

	match := sizePattern.FindStringSubmatch(size)
	if match == nil {
		return 0
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}

	multiplier, ok := sizeMultipliers[match[2]]
	if !ok {
		return 0
	}

	bytes := number * multiplier
	if bytes >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(bytes)
}

// ParseCount converts a scraped seeder/leecher cell to an int.
// Anything that is not a plain non-negative integer counts as 0.
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeSpaces turns non-breaking spaces into regular ones and trims.
func NormalizeSpaces(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}
