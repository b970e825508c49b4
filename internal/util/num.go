package util

import (
	"math"
	"strconv"
	"strings"
)

// ResolveNo reads an explicit question number from the sheet. The value
// is taken only when it parses as a finite integer above zero; everything
// else falls back to itemCount+1, the next slot in insertion order.
func ResolveNo(raw string, itemCount int) int {
	if v, ok := parseNumber(raw); ok && v > 0 && v == math.Trunc(v) && v <= math.MaxInt32 {
		return int(v)
	}
	return itemCount + 1
}

// ResolveAskers reads the asker count. Finite values at or above zero are
// kept, fractions truncated; anything else counts as zero.
func ResolveAskers(raw string) int {
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func parseNumber(raw string) (float64, bool) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
