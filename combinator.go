package matchgo

import (
	"slices"
	"strings"
)

// Not returns a matcher inverting inner.
func Not[T any](inner Matcher[T]) Matcher[T] {
	return notMatcher[T]{inner: inner}
}

type notMatcher[T any] struct {
	inner Matcher[T]
}

func (m notMatcher[T]) Matches(v T) bool { return !m.inner.Matches(v) }

func (m notMatcher[T]) String() string { return "not(" + Describe(m.inner) + ")" }

// All returns the conjunction of ms. Children are evaluated strictly in the
// given order and evaluation stops at the first child returning false.
// The empty conjunction matches every value.
func All[T any](ms ...Matcher[T]) Matcher[T] {
	return allMatcher[T]{children: slices.Clone(ms)}
}

type allMatcher[T any] struct {
	children []Matcher[T]
}

func (m allMatcher[T]) Matches(v T) bool {
	for _, c := range m.children {
		if !c.Matches(v) {
			return false
		}
	}
	return true
}

func (m allMatcher[T]) String() string { return describeList("all", m.children) }

// Any returns the disjunction of ms. Children are evaluated strictly in the
// given order and evaluation stops at the first child returning true.
// The empty disjunction matches no value.
func Any[T any](ms ...Matcher[T]) Matcher[T] {
	return anyMatcher[T]{children: slices.Clone(ms)}
}

type anyMatcher[T any] struct {
	children []Matcher[T]
}

func (m anyMatcher[T]) Matches(v T) bool {
	for _, c := range m.children {
		if c.Matches(v) {
			return true
		}
	}
	return false
}

func (m anyMatcher[T]) String() string { return describeList("any", m.children) }

func describeList[T any](name string, ms []Matcher[T]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, c := range ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Describe(c))
	}
	sb.WriteByte(')')
	return sb.String()
}
