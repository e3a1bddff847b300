package matchgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		value    string
		expected bool
	}{
		{"Match", "Res", "ResNet", true},
		{"NoMatch", "Res", "GoogleNet", false},
		{"Exact", "ResNet", "ResNet", true},
		{"LongerThanValue", "ResNetV2", "ResNet", false},
		{"EmptyPrefixMatchesAll", "", "anything", true},
		{"EmptyPrefixEmptyValue", "", "", true},
		{"CaseSensitive", "res", "ResNet", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartsWith(tt.prefix).Matches(tt.value))
		})
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name     string
		suffix   string
		value    string
		expected bool
	}{
		{"Match", "Net", "ResNet", true},
		{"NoMatch", "Net", "Inception", false},
		{"Exact", "ResNet", "ResNet", true},
		{"LongerThanValue", "MyResNet", "ResNet", false},
		{"EmptySuffixMatchesAll", "", "anything", true},
		{"EmptySuffixEmptyValue", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EndsWith(tt.suffix).Matches(tt.value))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("sNe").Matches("ResNet"))
	assert.False(t, Contains("sNe").Matches("GoogleNet"))
	assert.True(t, Contains("").Matches("anything"))
}

func TestIgnoringCase_Equal(t *testing.T) {
	m := IgnoringCase(EqualTo("ResNet"))

	tests := []struct {
		value    string
		expected bool
	}{
		{"resnet", true},
		{"RESNET", true},
		{"ResNet", true},
		{"resnett", false},
		{"resne", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Matches(tt.value))
		})
	}
}

func TestIgnoringCase_FoldsNestedTrees(t *testing.T) {
	// Patterns captured anywhere inside the wrapped tree are folded too.
	m := IgnoringCase(Any(
		StartsWith("GOOGLE"),
		All(EndsWith("NET"), Not(Contains("XX"))),
	))

	assert.True(t, m.Matches("googlenet"))
	assert.True(t, m.Matches("ResNet"))
	assert.False(t, m.Matches("resxxnet"))
	assert.False(t, m.Matches("inception"))
}

func TestIgnoringCase_OneOf(t *testing.T) {
	m := IgnoringCase(OneOf("ResNet", "GoogleNet"))

	assert.True(t, m.Matches("RESNET"))
	assert.True(t, m.Matches("googlenet"))
	assert.False(t, m.Matches("Inception"))
}

func TestIgnoringCase_NonASCIIPassthrough(t *testing.T) {
	// Only ASCII letters fold; everything else must compare byte for byte.
	m := IgnoringCase(EqualTo("Straße"))

	assert.True(t, m.Matches("STRAßE"))
	assert.False(t, m.Matches("STRASSE"))
}

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"already lower", "already lower"},
		{"ResNet", "resnet"},
		{"ABC-123", "abc-123"},
		{"Straße", "straße"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, foldASCII(tt.in), "in=%q", tt.in)
	}
}
