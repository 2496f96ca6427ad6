package query

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/okian/campus/internal/domain/numeric"
)

// Kind selects how a sort key compares values.
type Kind int

// Supported sort kinds. KindNone and unknown kinds leave the order untouched.
const (
	KindNone Kind = iota
	KindAlphabetical
	KindNumeric
	KindChronological
)

// Direction is the sort direction.
type Direction int

// Sort directions.
const (
	Asc Direction = iota
	Desc
)

// chronoLayouts are tried in order when a chronological value is not a plain year.
var chronoLayouts = []string{"2006-01-02", time.RFC3339, "Jan-2006", "2006-01"}

// SortKey is one level of a sort order.
type SortKey[T any] struct {
	Kind      Kind
	Value     func(T) string
	Direction Direction
}

// AlphabeticalKey sorts by ordinal string comparison, ascending.
func AlphabeticalKey[T any](value func(T) string) SortKey[T] {
	return SortKey[T]{Kind: KindAlphabetical, Value: value, Direction: Asc}
}

// NumericKey sorts by the leading number of value.
func NumericKey[T any](value func(T) string, dir Direction) SortKey[T] {
	return SortKey[T]{Kind: KindNumeric, Value: value, Direction: dir}
}

// ChronologicalKey sorts by year or date.
func ChronologicalKey[T any](value func(T) string, dir Direction) SortKey[T] {
	return SortKey[T]{Kind: KindChronological, Value: value, Direction: dir}
}

// SortBy returns a stably sorted copy of records. Keys are applied in order;
// records equal on every key keep their input order. Keys with an unknown
// kind or a nil accessor are skipped.
func SortBy[T any](records []T, keys ...SortKey[T]) []T {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}

	valid := make([]SortKey[T], 0, len(keys))
	for _, k := range keys {
		if k.Value != nil && k.Kind >= KindAlphabetical && k.Kind <= KindChronological {
			valid = append(valid, k)
		}
	}
	if len(valid) == 0 {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range valid {
			if c := k.compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

func (k SortKey[T]) compare(a, b T) int {
	va, vb := k.Value(a), k.Value(b)
	var c int
	switch k.Kind {
	case KindAlphabetical:
		c = strings.Compare(va, vb)
	case KindNumeric:
		c = cmp.Compare(numeric.LeadingOr0(va), numeric.LeadingOr0(vb))
	case KindChronological:
		c = cmp.Compare(chronoValue(va), chronoValue(vb))
	}
	if k.Direction == Desc {
		return -c
	}
	return c
}

// chronoValue maps a year or date to a sortable integer. Unparseable values sort as 0.
func chronoValue(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		// plain years sort before any date within the same year
		return n * 10_000
	}
	for _, layout := range chronoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return int64(t.Year())*10_000 + int64(t.Month())*100 + int64(t.Day())
		}
	}
	return 0
}

// ParseKind maps a textual sort kind to a Kind. Unknown names map to KindNone.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alpha", "alphabetical", "name":
		return KindAlphabetical
	case "numeric", "number", "package":
		return KindNumeric
	case "chronological", "date", "year":
		return KindChronological
	default:
		return KindNone
	}
}

// ParseDirection maps "desc"/"descending" to Desc and everything else to Asc.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return Desc
	default:
		return Asc
	}
}
