package store

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// ErrCapacityExceeded indicates an Add against a full store.
//
// The store is left unchanged; ownership of the rejected record stays with
// the caller.
type ErrCapacityExceeded struct {
	Capacity int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("store capacity exceeded: %d", e.Capacity)
}
