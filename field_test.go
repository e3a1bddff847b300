package matchgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type network struct {
	name    string
	version int
}

func byName(m Matcher[string]) Matcher[network] {
	return Field(func(n network) string { return n.name }, m)
}

func byVersion(m Matcher[int]) Matcher[network] {
	return Field(func(n network) int { return n.version }, m)
}

func TestField_AdapterLaw(t *testing.T) {
	// Field(get, m).Matches(rec) must agree with m.Matches(get(rec)).
	get := func(n network) string { return n.name }
	inner := StartsWith("Res")

	for _, rec := range []network{{"ResNet", 1}, {"GoogleNet", 1}, {"", 0}} {
		assert.Equal(t, inner.Matches(get(rec)), Field(get, inner).Matches(rec), "rec=%+v", rec)
	}
}

func TestField_DifferentAttributesCompose(t *testing.T) {
	m := All(
		byName(EqualTo("ResNet")),
		byVersion(EqualTo(1)),
	)

	assert.True(t, m.Matches(network{name: "ResNet", version: 1}))
	assert.False(t, m.Matches(network{name: "ResNet", version: 2}))
	assert.False(t, m.Matches(network{name: "GoogleNet", version: 1}))
}

func TestField_Describe(t *testing.T) {
	assert.Equal(t, "field(equalTo(1))", Describe(byVersion(EqualTo(1))))
}
