package query

import (
	"cmp"
	"slices"
)

// TopN returns the n records with the highest key, highest first.
// Ties keep input order. n <= 0 yields an empty slice; n beyond the input
// length yields every record.
func TopN[T any](records []T, n int, key func(T) float64) []T {
	return selectN(records, n, key, func(a, b float64) int { return cmp.Compare(b, a) })
}

// BottomN returns the n records with the lowest key, lowest first, with the
// same tie and bound rules as TopN.
func BottomN[T any](records []T, n int, key func(T) float64) []T {
	return selectN(records, n, key, cmp.Compare[float64])
}

func selectN[T any](records []T, n int, key func(T) float64, order func(a, b float64) int) []T {
	if n <= 0 || len(records) == 0 {
		return []T{}
	}

	// score once; keys may parse strings
	type scored struct {
		rec T
		key float64
	}
	items := make([]scored, len(records))
	for i, r := range records {
		items[i] = scored{rec: r, key: key(r)}
	}
	slices.SortStableFunc(items, func(a, b scored) int { return order(a.key, b.key) })

	n = min(n, len(items))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = items[i].rec
	}
	return out
}
