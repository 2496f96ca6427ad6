// Package numeric holds the single number-extraction and rounding rules
// shared by every predicate, comparator and aggregator.
package numeric

import (
	"math"
	"strconv"
)

// Leading returns the first decimal number that appears in s.
// "22 LPA" -> 22, "4.2-4.8 LPA" -> 4.2, ".5 LPA" -> 0.5.
// ok is false when s contains no digits.
func Leading(s string) (v float64, ok bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			start = i
			break
		}
		if s[i] == '.' && i+1 < len(s) && isDigit(s[i+1]) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	// at most one fractional part, and only when a digit follows the dot
	if end < len(s) && s[end] == '.' && end+1 < len(s) && isDigit(s[end+1]) {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
		}
	}

	v, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LeadingOr0 is Leading with malformed input mapped to 0.
func LeadingOr0(s string) float64 {
	v, _ := Leading(s)
	return v
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundHalfUp rounds to the nearest integer with halves going towards +Inf.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Average returns sum/count rounded to 2 decimals, or 0 for an empty set.
func Average(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return Round2(sum / float64(count))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
