// Package filter provides boolean filter trees over records with named,
// typed attributes, as an explicit tagged representation interpreted by a
// single evaluator. Where the root matchgo package composes opaque matcher
// values in code, this package keeps the tree inspectable: it can be parsed
// from a query expression, walked, and rendered back.
//
// Example:
//
//	n, err := filter.Parse(`name ^= "Res" && !(version == 2)`)
//	if err != nil { ... }
//	n.Eval(rec)             // rec implements Filterable
//	filter.Matcher[Model](n) // bridge into the matcher core
package filter

import (
	"strings"

	"github.com/hupe1980/matchgo"
)

// Op is the comparison a leaf node applies to one attribute.
type Op uint8

const (
	// OpEqual matches attributes equal to the literal.
	OpEqual Op = iota + 1
	// OpNotEqual matches attributes not equal to the literal.
	OpNotEqual
	// OpStartsWith matches string attributes with the literal as prefix.
	OpStartsWith
	// OpEndsWith matches string attributes with the literal as suffix.
	OpEndsWith
	// OpContains matches string attributes containing the literal.
	OpContains
	// OpGreaterThan matches integer attributes strictly above the literal.
	OpGreaterThan
	// OpLessThan matches integer attributes strictly below the literal.
	OpLessThan
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpStartsWith:
		return "^="
	case OpEndsWith:
		return "$="
	case OpContains:
		return "*="
	case OpGreaterThan:
		return ">"
	case OpLessThan:
		return "<"
	default:
		return "?"
	}
}

// NodeKind tags the variant a Node holds.
type NodeKind uint8

const (
	// NodeLeaf compares one attribute against a literal.
	NodeLeaf NodeKind = iota + 1
	// NodeNot negates its single child.
	NodeNot
	// NodeAll is the conjunction of its children; empty means true.
	NodeAll
	// NodeAny is the disjunction of its children; empty means false.
	NodeAny
)

// Node is one node of a filter tree.
//
// Leaf nodes use Key, Op and Value; Not holds exactly one child; All and
// Any hold an ordered child sequence whose order is the evaluation order.
type Node struct {
	Kind     NodeKind
	Key      string
	Op       Op
	Value    Value
	Children []*Node
}

// Leaf builds a leaf node comparing the named attribute against v.
func Leaf(key string, op Op, v Value) *Node {
	return &Node{Kind: NodeLeaf, Key: key, Op: op, Value: v}
}

// Not builds a negation node.
func Not(child *Node) *Node {
	return &Node{Kind: NodeNot, Children: []*Node{child}}
}

// All builds a conjunction node. All() evaluates to true.
func All(children ...*Node) *Node {
	return &Node{Kind: NodeAll, Children: children}
}

// Any builds a disjunction node. Any() evaluates to false.
func Any(children ...*Node) *Node {
	return &Node{Kind: NodeAny, Children: children}
}

// Filterable exposes a record's attributes to filter evaluation.
type Filterable interface {
	// Field returns the value of the named attribute and whether it exists.
	Field(key string) (Value, bool)
}

// Eval interprets the tree against one record. Conjunctions and
// disjunctions evaluate children in order and short-circuit. Attributes the
// record does not expose never match.
func (n *Node) Eval(f Filterable) bool {
	switch n.Kind {
	case NodeLeaf:
		have, ok := f.Field(n.Key)
		if !ok {
			return false
		}
		return evalLeaf(n.Op, have, n.Value)
	case NodeNot:
		return !n.Children[0].Eval(f)
	case NodeAll:
		for _, c := range n.Children {
			if !c.Eval(f) {
				return false
			}
		}
		return true
	case NodeAny:
		for _, c := range n.Children {
			if c.Eval(f) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func evalLeaf(op Op, have, want Value) bool {
	switch op {
	case OpEqual:
		return have.Equal(want)
	case OpNotEqual:
		return !have.Equal(want)
	case OpStartsWith:
		return have.Kind == KindString && want.Kind == KindString &&
			strings.HasPrefix(have.S, want.S)
	case OpEndsWith:
		return have.Kind == KindString && want.Kind == KindString &&
			strings.HasSuffix(have.S, want.S)
	case OpContains:
		return have.Kind == KindString && want.Kind == KindString &&
			strings.Contains(have.S, want.S)
	case OpGreaterThan:
		return have.Kind == KindInt && want.Kind == KindInt && have.I > want.I
	case OpLessThan:
		return have.Kind == KindInt && want.Kind == KindInt && have.I < want.I
	default:
		return false
	}
}

// String renders the tree as a filter expression that Parse accepts again.
func (n *Node) String() string {
	switch n.Kind {
	case NodeLeaf:
		return n.Key + " " + n.Op.String() + " " + n.Value.String()
	case NodeNot:
		return "!(" + n.Children[0].String() + ")"
	case NodeAll:
		return joinChildren(n.Children, " && ", "true")
	case NodeAny:
		return joinChildren(n.Children, " || ", "false")
	default:
		return "<invalid>"
	}
}

func joinChildren(children []*Node, sep, empty string) string {
	if len(children) == 0 {
		return empty
	}
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// Matcher bridges a filter tree into the matcher core, so parsed rules
// compose with code-built matchers and run against a store.
func Matcher[R Filterable](n *Node) matchgo.Matcher[R] {
	return nodeMatcher[R]{node: n}
}

type nodeMatcher[R Filterable] struct {
	node *Node
}

func (m nodeMatcher[R]) Matches(r R) bool { return m.node.Eval(r) }

func (m nodeMatcher[R]) String() string { return m.node.String() }
