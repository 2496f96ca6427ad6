// Package query is the in-memory query engine behind the dashboards:
// predicate filtering, stable multi-key sorting, grouping with summary
// statistics and top-N selection.
//
// Every function is pure. Inputs are never reordered or modified and every
// result is a freshly allocated slice, so callers may share snapshots freely.
package query

import (
	"strings"

	"github.com/okian/campus/internal/domain/numeric"
)

// matchAll is the categorical sentinel that disables an equality predicate.
const matchAll = "all"

// Predicate reports whether a record should be kept.
// A nil Predicate is disabled and matches everything.
type Predicate[T any] func(T) bool

// Filter keeps the records that satisfy every predicate, in input order.
// With no (or only nil) predicates it returns a copy of records.
func Filter[T any](records []T, preds ...Predicate[T]) []T {
	active := compact(preds)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matches(r, active) {
			out = append(out, r)
		}
	}
	return out
}

// And composes predicates into one. Nil predicates are skipped; with nothing
// left the result is nil, i.e. disabled.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	active := compact(preds)
	if len(active) == 0 {
		return nil
	}
	return func(r T) bool { return matches(r, active) }
}

// Text matches when any of fields contains query, ignoring case.
// A blank query disables the predicate.
func Text[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(fields) == 0 {
		return nil
	}
	return func(r T) bool {
		for _, f := range fields {
			if f == nil {
				continue
			}
			if strings.Contains(strings.ToLower(f(r)), q) {
				return true
			}
		}
		return false
	}
}

// Range matches when the leading number of field lies in [min, max].
// Values without a number are out of range.
func Range[T any](field func(T) string, min, max float64) Predicate[T] {
	if field == nil {
		return nil
	}
	return func(r T) bool {
		v, ok := numeric.Leading(field(r))
		if !ok {
			return false
		}
		return v >= min && v <= max
	}
}

// Equals matches field against value exactly. "All", "all" and "" disable it.
func Equals[T any](field func(T) string, value string) Predicate[T] {
	if field == nil || IsMatchAll(value) {
		return nil
	}
	return func(r T) bool { return field(r) == value }
}

// AnyOf matches when the list returned by field contains value exactly.
// Used for multi-valued attributes such as eligible branches.
func AnyOf[T any](field func(T) []string, value string) Predicate[T] {
	if field == nil || IsMatchAll(value) {
		return nil
	}
	return func(r T) bool {
		for _, v := range field(r) {
			if v == value {
				return true
			}
		}
		return false
	}
}

// IsMatchAll reports whether value is the categorical match-all sentinel.
func IsMatchAll(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, matchAll)
}

func compact[T any](preds []Predicate[T]) []Predicate[T] {
	out := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func matches[T any](r T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}
