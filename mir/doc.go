// Package mir provides the interchange representation for symbolic math
// expressions.
//
// # Overview
//
// A mir.Node is a recursive tagged union with three node types. The wire
// form is MathJSON, so trees exchanged with other systems are readable in
// any JSON tooling.
//
// # Node Types
//
//   - NumberType: exactly one of Int64, Float64, Big (arbitrary precision
//     integer) or Rat (exact rational) is set
//   - SymbolType: Name holds the canonical symbol name, such as "x", "Pi"
//     or "ExponentialE"
//   - FunctionType: Head holds the operator tag, such as "Add" or "Sqrt",
//     and Args the ordered arguments
//
// # Creating Nodes
//
//	x := mir.Sym("x")
//	half := mir.Fn("Rational", mir.FromInt(1), mir.FromInt(2))
//	root := mir.Fn("Sqrt", x)
//
// Nodes are treated as immutable once built. Constructors copy big values.
//
// # MathJSON
//
//	d, err := json.Marshal(node)  // ["Add","x",1]
//	node, err := mir.FromJSON(d)
//
// Integers beyond 64 bits are written as {"num": "..."}; rationals as
// ["Rational", p, q]. Reading accepts the same plus the {"sym": ...} and
// {"fn": [...]} object forms.
//
// # Comparison
//
//	equal := mir.Equal(a, b)
//	order := mir.Compare(a, b)
//
// # Thread Safety
//
// Nodes are never mutated after construction, so they may be shared across
// goroutines freely.
package mir
