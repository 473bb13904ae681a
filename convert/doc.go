// Package convert translates expression trees between the algebra kernel
// (package native), the interchange format (package mir) and the second
// algebra system (package sym).
//
// # Directions
//
//   - Forward: native to interchange. Structural, never fails on an
//     unknown operator.
//   - Backward: interchange to native. Structural where the kernel has a
//     constructor, textual (render, then evaluate) for relations and
//     unmapped tags.
//   - ToSym, FromSym: interchange to and from the second system.
//   - NativeToSym: kernel text through the syntax fallback.
//
// # Usage
//
//	k := kernel.New()
//	c := convert.New(convert.WithEvaluator(k))
//	n, _ := k.Eval("x^(1/2)+1")
//	m, _ := c.Forward(n) // ["Add",["Sqrt","x"],1]
//	back, _ := c.Backward(m)
//
// The kernel evaluator is only needed by the textual paths; without one
// they fail with ErrNoEvaluator.
package convert
