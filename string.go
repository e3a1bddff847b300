package matchgo

import (
	"fmt"
	"strings"
)

// StartsWith returns a matcher satisfied by strings beginning with prefix,
// compared byte for byte. The empty prefix matches every string.
func StartsWith(prefix string) Matcher[string] {
	return startsWithMatcher{prefix: prefix}
}

type startsWithMatcher struct {
	prefix string
}

func (m startsWithMatcher) Matches(s string) bool { return strings.HasPrefix(s, m.prefix) }

func (m startsWithMatcher) String() string { return fmt.Sprintf("startsWith(%q)", m.prefix) }

// EndsWith returns a matcher satisfied by strings ending with suffix,
// compared byte for byte. The empty suffix matches every string.
func EndsWith(suffix string) Matcher[string] {
	return endsWithMatcher{suffix: suffix}
}

type endsWithMatcher struct {
	suffix string
}

func (m endsWithMatcher) Matches(s string) bool { return strings.HasSuffix(s, m.suffix) }

func (m endsWithMatcher) String() string { return fmt.Sprintf("endsWith(%q)", m.suffix) }

// Contains returns a matcher satisfied by strings containing sub.
// The empty substring matches every string.
func Contains(sub string) Matcher[string] {
	return containsMatcher{sub: sub}
}

type containsMatcher struct {
	sub string
}

func (m containsMatcher) Matches(s string) bool { return strings.Contains(s, m.sub) }

func (m containsMatcher) String() string { return fmt.Sprintf("contains(%q)", m.sub) }

// IgnoringCase wraps a string matcher with ASCII case folding. Both the
// actual value and the patterns captured inside inner are lower-cased before
// evaluation; inner trees of Not/All/Any are folded recursively. Non-ASCII
// bytes pass through unchanged, so this is not full Unicode case folding.
func IgnoringCase(inner Matcher[string]) Matcher[string] {
	return ignoringCaseMatcher{inner: foldPatterns(inner)}
}

type ignoringCaseMatcher struct {
	inner Matcher[string]
}

func (m ignoringCaseMatcher) Matches(s string) bool { return m.inner.Matches(foldASCII(s)) }

func (m ignoringCaseMatcher) String() string { return "ignoringCase(" + Describe(m.inner) + ")" }

// foldPatterns rewrites the string patterns captured inside a matcher tree
// to their ASCII-folded form. Matcher kinds carrying no pattern, and kinds
// this package does not know about, pass through unchanged.
func foldPatterns(m Matcher[string]) Matcher[string] {
	switch t := m.(type) {
	case equalMatcher[string]:
		return equalMatcher[string]{want: foldASCII(t.want)}
	case startsWithMatcher:
		return startsWithMatcher{prefix: foldASCII(t.prefix)}
	case endsWithMatcher:
		return endsWithMatcher{suffix: foldASCII(t.suffix)}
	case containsMatcher:
		return containsMatcher{sub: foldASCII(t.sub)}
	case oneOfMatcher[string]:
		vals := make([]string, len(t.vals))
		for i, v := range t.vals {
			vals[i] = foldASCII(v)
		}
		return oneOfMatcher[string]{vals: vals}
	case notMatcher[string]:
		return notMatcher[string]{inner: foldPatterns(t.inner)}
	case allMatcher[string]:
		return allMatcher[string]{children: foldAll(t.children)}
	case anyMatcher[string]:
		return anyMatcher[string]{children: foldAll(t.children)}
	case ignoringCaseMatcher:
		return t
	default:
		return m
	}
}

func foldAll(ms []Matcher[string]) []Matcher[string] {
	folded := make([]Matcher[string], len(ms))
	for i, c := range ms {
		folded[i] = foldPatterns(c)
	}
	return folded
}

// foldASCII lower-cases the ASCII letters of s and leaves every other byte
// untouched. Returns s itself when nothing needs folding.
func foldASCII(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}
