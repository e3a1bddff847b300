// Package matchgo provides composable, pure boolean matchers over typed
// values, and the building blocks to search record collections with them.
//
// A Matcher[T] answers one question: does this value satisfy a condition?
// Matchers are immutable values combined by value, never shared-mutable, so
// trees built from independent parts carry no aliasing hazards.
//
// # Quick Start
//
// Build a matcher tree from leaves and combinators, then hand it to a store:
//
//	m := matchgo.All(
//	    matchgo.StartsWith("Res"),
//	    matchgo.IgnoringCase(matchgo.EqualTo("resnet")),
//	)
//	m.Matches("ResNet") // true
//
// Field adapters lift a matcher over one attribute into a matcher over a
// whole record:
//
//	byName := matchgo.Field(func(rec Model) string { return rec.Name },
//	    matchgo.EqualTo("GoogleNet"))
//
// The store package supplies a bounded, order-preserving collection whose
// Find performs a linear, short-circuiting scan:
//
//	s, _ := store.New[Model](64)
//	_ = s.Add(Model{Name: "ResNet", Version: 1})
//	rec, ok := s.Find(byName)
//
// # Combinators
//
//   - All(ms...): conjunction, in-order, short-circuits on the first false;
//     All() matches everything.
//   - Any(ms...): disjunction, in-order, short-circuits on the first true;
//     Any() matches nothing.
//   - Not(m): negation.
//   - Always() / Never(): constants.
//
// # Introspection
//
// Every matcher shipped by this package implements fmt.Stringer; Describe
// renders any matcher tree for logs and error messages:
//
//	matchgo.Describe(m) // all(startsWith("Res"), ignoringCase(equalTo("resnet")))
//
// The filter subpackage offers the same semantics as an explicit tagged tree
// with a tiny expression parser, for rule tables that must be parsed or
// inspected rather than composed in code.
package matchgo
