package filter

import "strconv"

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindString represents a string value.
	KindString
	// KindInt represents an integer value.
	KindInt
)

// Value is a small typed value used for filter literals and record
// attributes. The representation keeps evaluation fast and predictable:
// no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind
	S    string
	I    int64
}

// String constructs a string Value.
func String(s string) Value { return Value{Kind: KindString, S: s} }

// Int constructs an integer Value.
func Int(i int64) Value { return Value{Kind: KindInt, I: i} }

// Equal reports whether v and o hold the same kind and the same payload.
// Values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.S == o.S
	case KindInt:
		return v.I == o.I
	default:
		return false
	}
}

// String renders the value as a filter-expression literal.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.S)
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	default:
		return "<invalid>"
	}
}
