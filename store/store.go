// Package store provides a bounded, order-preserving, exclusively owning
// record collection searched by matcher trees.
//
// A Store holds at most its configured capacity of records, in insertion
// order, and exposes a linear, short-circuiting scan via Find. There is no
// removal, update, or indexed lookup. The store performs no internal
// locking: Add must be externally synchronized against concurrent Add or
// Find calls, while concurrent Find calls against a quiescent store are
// safe because matcher evaluation is pure.
package store

import (
	"fmt"

	"github.com/hupe1980/matchgo"
)

// Store is a fixed-capacity ordered sequence of records of type T.
// The zero value is not usable; construct with New.
type Store[T any] struct {
	records []T
	logger  *matchgo.Logger
}

// New creates a Store holding at most capacity records.
// The backing array is allocated once, so record references handed out by
// Find stay valid until the store itself is released.
func New[T any](capacity int, optFns ...Option) (*Store[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &Store[T]{
		records: make([]T, 0, capacity),
		logger:  o.logger.WithComponent("store"),
	}, nil
}

// Add appends v at the end of the sequence, transferring ownership to the
// store. A full store rejects the record with *ErrCapacityExceeded and is
// left unchanged.
func (s *Store[T]) Add(v T) error {
	if len(s.records) == cap(s.records) {
		return &ErrCapacityExceeded{Capacity: cap(s.records)}
	}

	s.records = append(s.records, v)
	s.logger.Debug("record added", "size", len(s.records), "capacity", cap(s.records))

	return nil
}

// Find scans records in insertion order and returns a reference to the
// first one satisfying m. Not-found is a normal negative result reported as
// (nil, false), never an error. The scan mutates neither the store nor the
// matcher.
func (s *Store[T]) Find(m matchgo.Matcher[T]) (*T, bool) {
	for i := range s.records {
		if m.Matches(s.records[i]) {
			s.logger.Debug("find hit", "index", i, "matcher", matchgo.Describe(m))
			return &s.records[i], true
		}
	}

	s.logger.Debug("find miss", "size", len(s.records), "matcher", matchgo.Describe(m))

	return nil, false
}

// FindAll scans records in insertion order and returns references to every
// record satisfying m. The result is nil when nothing matches.
func (s *Store[T]) FindAll(m matchgo.Matcher[T]) []*T {
	var hits []*T
	for i := range s.records {
		if m.Matches(s.records[i]) {
			hits = append(hits, &s.records[i])
		}
	}
	return hits
}

// Each calls fn for every record in insertion order until fn returns false.
func (s *Store[T]) Each(fn func(v *T) bool) {
	for i := range s.records {
		if !fn(&s.records[i]) {
			return
		}
	}
}

// Len returns the number of records currently held.
func (s *Store[T]) Len() int { return len(s.records) }

// Cap returns the configured capacity.
func (s *Store[T]) Cap() int { return cap(s.records) }
