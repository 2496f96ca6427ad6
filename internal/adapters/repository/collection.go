package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/campus/pkg/metrics"
)

// Normalizer cleans a record and reports whether it is well-formed.
type Normalizer[T any] func(T) (T, error)

// Collection is an in-memory Store. Readers load the published snapshot
// through an atomic pointer; replacements are serialized.
type Collection[T any] struct {
	name      string
	id        func(T) int
	normalize Normalizer[T]
	opts      options

	mu       sync.Mutex // serializes Replace
	snapshot atomic.Pointer[Snapshot[T]]
}

// NewCollection creates an empty collection. id extracts the record id used
// for uniqueness checks; normalize may be nil.
func NewCollection[T any](name string, id func(T) int, normalize Normalizer[T], opts ...Option) *Collection[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collection[T]{
		name:      name,
		id:        id,
		normalize: normalize,
		opts:      o,
	}
	c.snapshot.Store(&Snapshot[T]{
		Name:      name,
		Version:   o.version(),
		Records:   []T{},
		UpdatedAt: o.clock(),
	})
	return c
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Snapshot implements Store.Snapshot.
func (c *Collection[T]) Snapshot(_ context.Context) Snapshot[T] {
	return *c.snapshot.Load()
}

// Replace implements Store.Replace. The input slice is copied, so later
// changes by the caller do not leak into the snapshot.
func (c *Collection[T]) Replace(_ context.Context, records []T) (Snapshot[T], error) {
	start := time.Now()
	defer func() {
		metrics.RecordSnapshotReplaceLatency(c.name, float64(time.Since(start).Microseconds())/1000)
	}()

	clean := make([]T, len(records))
	seen := make(map[int]int, len(records))
	for i, r := range records {
		if c.normalize != nil {
			n, err := c.normalize(r)
			if err != nil {
				metrics.RecordErrorByComponent("repository", "invalid_record")
				return Snapshot[T]{}, fmt.Errorf("%s[%d]: %w", c.name, i, err)
			}
			r = n
		}
		id := c.id(r)
		if prev, dup := seen[id]; dup {
			metrics.RecordErrorByComponent("repository", "duplicate_id")
			return Snapshot[T]{}, fmt.Errorf("%s[%d]: id %d already used at %d: %w", c.name, i, id, prev, ErrDuplicateID)
		}
		seen[id] = i
		clean[i] = r
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s := &Snapshot[T]{
		Name:      c.name,
		Version:   c.opts.version(),
		Records:   clean,
		UpdatedAt: c.opts.clock(),
	}
	c.snapshot.Store(s)

	metrics.RecordSnapshotReplace(c.name)
	metrics.UpdateDatasetRecords(c.name, len(clean))
	return *s, nil
}
