package matchgo

// Field lifts a matcher over a single attribute into a matcher over a whole
// record by supplying an extraction function. This separates what attribute
// to examine from what condition to test, so the same combinator library
// serves any attribute:
//
//	Field(get, m).Matches(rec) == m.Matches(get(rec))
//
// Type mismatches between matcher and attribute are rejected at compile time.
func Field[R, F any](get func(R) F, inner Matcher[F]) Matcher[R] {
	return fieldMatcher[R, F]{get: get, inner: inner}
}

type fieldMatcher[R, F any] struct {
	get   func(R) F
	inner Matcher[F]
}

func (m fieldMatcher[R, F]) Matches(r R) bool { return m.inner.Matches(m.get(r)) }

func (m fieldMatcher[R, F]) String() string { return "field(" + Describe(m.inner) + ")" }
