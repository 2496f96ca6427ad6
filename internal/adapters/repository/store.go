// Package repository is the dataset store: named record collections exposed
// as immutable, versioned snapshots.
package repository

import (
	"context"
	"time"
)

// Snapshot is an immutable view of a collection. Records must not be
// modified by readers; a replacement publishes a new Snapshot instead.
type Snapshot[T any] struct {
	Name      string
	Version   string
	Records   []T
	UpdatedAt time.Time
}

// Len returns the number of records in the snapshot.
func (s Snapshot[T]) Len() int { return len(s.Records) }

// Store provides snapshot access to one record collection.
type Store[T any] interface {
	// Snapshot returns the current snapshot. It never blocks on writers.
	Snapshot(ctx context.Context) Snapshot[T]

	// Replace validates and normalizes records and publishes them as the
	// new snapshot. On error the current snapshot is kept.
	Replace(ctx context.Context, records []T) (Snapshot[T], error)
}
