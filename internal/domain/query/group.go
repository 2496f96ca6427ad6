package query

import (
	"github.com/okian/campus/internal/domain/numeric"
)

// GroupStats summarises the numeric values of one group.
type GroupStats struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Groups is the result of GroupBy. Keys lists every group once: universe
// keys first in the order given, then other keys in first-seen order.
type Groups[K comparable] struct {
	Keys  []K
	Stats map[K]GroupStats
}

// Get returns the stats for key; unknown keys report zero stats.
func (g Groups[K]) Get(key K) GroupStats {
	return g.Stats[key]
}

// Len returns the number of groups.
func (g Groups[K]) Len() int { return len(g.Keys) }

// Total returns the number of records across all groups.
func (g Groups[K]) Total() int {
	total := 0
	for _, k := range g.Keys {
		total += g.Stats[k].Count
	}
	return total
}

// GroupBy partitions records by key and summarises value per group in a
// single pass. Every key in universe yields a group even when no record maps
// to it; such groups have zero count, sum, average, min and max.
// A nil value accessor aggregates counts only.
func GroupBy[T any, K comparable](records []T, key func(T) K, value func(T) float64, universe ...K) Groups[K] {
	g := Groups[K]{
		Keys:  make([]K, 0, len(universe)),
		Stats: make(map[K]GroupStats, len(universe)),
	}
	for _, k := range universe {
		if _, ok := g.Stats[k]; ok {
			continue
		}
		g.Keys = append(g.Keys, k)
		g.Stats[k] = GroupStats{}
	}

	for _, r := range records {
		k := key(r)
		var v float64
		if value != nil {
			v = value(r)
		}

		st, seen := g.Stats[k]
		if !seen {
			g.Keys = append(g.Keys, k)
		}
		if st.Count == 0 {
			st.Min, st.Max = v, v
		} else {
			st.Min = min(st.Min, v)
			st.Max = max(st.Max, v)
		}
		st.Count++
		st.Sum += v
		g.Stats[k] = st
	}

	for k, st := range g.Stats {
		st.Average = numeric.Average(st.Sum, st.Count)
		g.Stats[k] = st
	}
	return g
}

// Numeric adapts a unit-suffixed string field into a value accessor using
// the leading-number rule; malformed values contribute 0.
func Numeric[T any](field func(T) string) func(T) float64 {
	return func(r T) float64 { return numeric.LeadingOr0(field(r)) }
}

// CountDistinct returns the number of distinct keys among records.
func CountDistinct[T any, K comparable](records []T, key func(T) K) int {
	seen := make(map[K]struct{}, len(records))
	for _, r := range records {
		seen[key(r)] = struct{}{}
	}
	return len(seen)
}
