// Package native models the algebra kernel's own expression tree.
//
// # Node Variants
//
// A Node is one of:
//
//   - Int: the kernel's immediate 32-bit integer
//   - Double: an IEEE-754 double
//   - BigInt: an arbitrary precision integer held as big-endian magnitude
//     bytes and a separate sign
//   - Fraction: numerator and denominator nodes
//   - Complex: real and imaginary nodes
//   - Identifier: a variable or named constant, told apart only by name
//   - Application: an operator name and its feuille
//   - Vector: an ordered list of nodes
//
// The variant set is closed. Code that must handle every variant implements
// Visitor and dispatches with Walk, so a new variant is a compile error in
// every visitor rather than a silent default case.
//
// # Feuille
//
// An Application does not store its arity. A Vector feuille holds the
// arguments of a multi-argument call, any other feuille is the single
// argument:
//
//	native.Apply("+", native.Identifier("x"), native.Int(1)) // x+1
//	native.Apply("sin", native.Identifier("x"))             // sin(x)
//
// # Big Integers
//
// EncodeBig and DecodeBig transcode between math/big and the kernel's
// magnitude/sign pair byte by byte, so values of any width survive.
//
// # Rendering
//
// Render produces the kernel's textual syntax. The kernel package parses
// that syntax back into nodes.
package native
