package matchgo

import "fmt"

// Matcher is a pure predicate over values of type T.
//
// Implementations must be referentially transparent: the same input always
// produces the same result, Matches has no side effects, and it is safe to
// invoke any number of times. Matchers hold their expectations by value,
// captured at construction time.
//
// Matchers are interface values, so heterogeneous collections of mixed
// concrete kinds ([]Matcher[T]) work out of the box.
type Matcher[T any] interface {
	// Matches reports whether v satisfies the predicate.
	Matches(v T) bool
}

// Func adapts an ordinary function to the Matcher interface.
// The function must uphold the Matcher purity contract.
type Func[T any] func(v T) bool

// Matches calls f(v).
func (f Func[T]) Matches(v T) bool { return f(v) }

func (f Func[T]) String() string { return "func()" }

// EqualTo returns a matcher satisfied exactly by values equal to want.
func EqualTo[T comparable](want T) Matcher[T] {
	return equalMatcher[T]{want: want}
}

type equalMatcher[T comparable] struct {
	want T
}

func (m equalMatcher[T]) Matches(v T) bool { return v == m.want }

func (m equalMatcher[T]) String() string { return fmt.Sprintf("equalTo(%v)", m.want) }

// Always returns a matcher that matches every value.
func Always[T any]() Matcher[T] { return alwaysMatcher[T]{} }

// Never returns a matcher that matches no value.
func Never[T any]() Matcher[T] { return neverMatcher[T]{} }

type alwaysMatcher[T any] struct{}

func (alwaysMatcher[T]) Matches(T) bool { return true }

func (alwaysMatcher[T]) String() string { return "always()" }

type neverMatcher[T any] struct{}

func (neverMatcher[T]) Matches(T) bool { return false }

func (neverMatcher[T]) String() string { return "never()" }

// Describe renders a matcher tree as a human-readable expression.
// Matchers that do not implement fmt.Stringer render as their Go type.
func Describe[T any](m Matcher[T]) string {
	if s, ok := any(m).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", m)
}
