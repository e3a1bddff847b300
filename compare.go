package matchgo

import (
	"cmp"
	"fmt"
	"slices"
)

// ordOp selects the relation an ordered matcher tests.
type ordOp uint8

const (
	opGT ordOp = iota
	opGE
	opLT
	opLE
)

// GreaterThan returns a matcher satisfied by values strictly above bound.
func GreaterThan[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{op: opGT, bound: bound}
}

// AtLeast returns a matcher satisfied by values greater than or equal to bound.
func AtLeast[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{op: opGE, bound: bound}
}

// LessThan returns a matcher satisfied by values strictly below bound.
func LessThan[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{op: opLT, bound: bound}
}

// AtMost returns a matcher satisfied by values less than or equal to bound.
func AtMost[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{op: opLE, bound: bound}
}

type orderedMatcher[T cmp.Ordered] struct {
	op    ordOp
	bound T
}

func (m orderedMatcher[T]) Matches(v T) bool {
	switch m.op {
	case opGT:
		return v > m.bound
	case opGE:
		return v >= m.bound
	case opLT:
		return v < m.bound
	case opLE:
		return v <= m.bound
	default:
		return false
	}
}

func (m orderedMatcher[T]) String() string {
	var name string
	switch m.op {
	case opGT:
		name = "greaterThan"
	case opGE:
		name = "atLeast"
	case opLT:
		name = "lessThan"
	case opLE:
		name = "atMost"
	}
	return fmt.Sprintf("%s(%v)", name, m.bound)
}

// OneOf returns a matcher satisfied by values equal to any of vals.
// Candidates are compared in the given order; OneOf() matches nothing.
func OneOf[T comparable](vals ...T) Matcher[T] {
	return oneOfMatcher[T]{vals: slices.Clone(vals)}
}

type oneOfMatcher[T comparable] struct {
	vals []T
}

func (m oneOfMatcher[T]) Matches(v T) bool {
	for _, w := range m.vals {
		if v == w {
			return true
		}
	}
	return false
}

func (m oneOfMatcher[T]) String() string { return fmt.Sprintf("oneOf(%v)", m.vals) }
