package matchgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_EmptyMatchesEverything(t *testing.T) {
	assert.True(t, All[int]().Matches(0))
	assert.True(t, All[string]().Matches("anything"))
}

func TestAny_EmptyMatchesNothing(t *testing.T) {
	assert.False(t, Any[int]().Matches(0))
	assert.False(t, Any[string]().Matches("anything"))
}

func TestAll_AgreesWithConjunction(t *testing.T) {
	m1 := GreaterThan(10)
	m2 := LessThan(20)

	for _, v := range []int{5, 10, 15, 20, 25} {
		expected := m1.Matches(v) && m2.Matches(v)
		assert.Equal(t, expected, All(m1, m2).Matches(v), "v=%d", v)
	}
}

func TestAny_AgreesWithDisjunction(t *testing.T) {
	m1 := LessThan(10)
	m2 := GreaterThan(20)

	for _, v := range []int{5, 10, 15, 20, 25} {
		expected := m1.Matches(v) || m2.Matches(v)
		assert.Equal(t, expected, Any(m1, m2).Matches(v), "v=%d", v)
	}
}

func TestAll_Associative(t *testing.T) {
	m1 := GreaterThan(0)
	m2 := LessThan(100)
	m3 := Not(EqualTo(50))

	for _, v := range []int{-1, 0, 25, 50, 99, 100} {
		flat := All(m1, m2, m3).Matches(v)
		nested := All(m1, All(m2, m3)).Matches(v)
		assert.Equal(t, flat, nested, "v=%d", v)
	}
}

func TestAny_Associative(t *testing.T) {
	m1 := LessThan(0)
	m2 := EqualTo(50)
	m3 := GreaterThan(100)

	for _, v := range []int{-1, 0, 50, 99, 101} {
		flat := Any(m1, m2, m3).Matches(v)
		nested := Any(m1, Any(m2, m3)).Matches(v)
		assert.Equal(t, flat, nested, "v=%d", v)
	}
}

func TestNot_DoubleNegation(t *testing.T) {
	m := StartsWith("Res")

	for _, v := range []string{"ResNet", "GoogleNet", ""} {
		assert.Equal(t, m.Matches(v), Not(Not(m)).Matches(v), "v=%q", v)
	}
}

func TestAll_ShortCircuitOrder(t *testing.T) {
	var calls []string
	probe := func(name string, result bool) Matcher[int] {
		return Func[int](func(int) bool {
			calls = append(calls, name)
			return result
		})
	}

	calls = nil
	assert.False(t, All(probe("a", true), probe("b", false), probe("c", true)).Matches(0))
	assert.Equal(t, []string{"a", "b"}, calls, "must stop at the first false child")

	calls = nil
	assert.True(t, Any(probe("a", false), probe("b", true), probe("c", false)).Matches(0))
	assert.Equal(t, []string{"a", "b"}, calls, "must stop at the first true child")
}

func TestCombinators_CopyChildren(t *testing.T) {
	// Combinators clone the child slice, so mutating the caller's slice
	// afterwards must not change the matcher.
	children := []Matcher[int]{EqualTo(1)}
	m := All(children...)
	children[0] = Never[int]()

	assert.True(t, m.Matches(1))
}

func TestHeterogeneousMatcherSlice(t *testing.T) {
	// Mixed concrete matcher kinds share one interface type, so rule tables
	// need no dedicated representation.
	rules := []Matcher[string]{
		EqualTo("exact"),
		StartsWith("pre"),
		Not(Contains("x")),
		Always[string](),
	}

	assert.True(t, Any(rules...).Matches("prefix"))
	assert.True(t, All(rules[1], rules[3]).Matches(`prefab`))
}
