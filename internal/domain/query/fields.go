package query

import "strconv"

// Fields is a registry of named string accessors for a record type. It lets
// outer layers build predicates and sort keys from request parameters;
// names that are not registered resolve to disabled predicates and no-op
// sort keys.
type Fields[T any] map[string]func(T) string

// IntField adapts an integer accessor into a string one.
func IntField[T any, N ~int](f func(T) N) func(T) string {
	return func(r T) string { return strconv.Itoa(int(f(r))) }
}

// Text builds a text-search predicate over the named fields.
func (fs Fields[T]) Text(query string, names ...string) Predicate[T] {
	accessors := make([]func(T) string, 0, len(names))
	for _, n := range names {
		if f, ok := fs[n]; ok {
			accessors = append(accessors, f)
		}
	}
	return Text(query, accessors...)
}

// Range builds a numeric-range predicate over the named field.
func (fs Fields[T]) Range(name string, min, max float64) Predicate[T] {
	return Range(fs[name], min, max)
}

// Equals builds a categorical predicate over the named field.
func (fs Fields[T]) Equals(name, value string) Predicate[T] {
	return Equals(fs[name], value)
}

// SortKey builds a sort key over the named field. An unknown name yields a
// key with a nil accessor, which SortBy ignores.
func (fs Fields[T]) SortKey(kind Kind, name string, dir Direction) SortKey[T] {
	return SortKey[T]{Kind: kind, Value: fs[name], Direction: dir}
}
