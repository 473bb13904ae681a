package native

import "fmt"

// Visitor has one method per node variant. Adding a variant adds a method
// here, so every visitor in the module stops compiling until it handles it.
type Visitor[T any] interface {
	VisitInt(Int) (T, error)
	VisitDouble(Double) (T, error)
	VisitBigInt(BigInt) (T, error)
	VisitFraction(Fraction) (T, error)
	VisitComplex(Complex) (T, error)
	VisitIdentifier(Identifier) (T, error)
	VisitApplication(Application) (T, error)
	VisitVector(Vector) (T, error)
}

// Walk dispatches n to the visitor method for its variant.
func Walk[T any](n Node, v Visitor[T]) (T, error) {
	switch x := n.(type) {
	case Int:
		return v.VisitInt(x)
	case Double:
		return v.VisitDouble(x)
	case BigInt:
		return v.VisitBigInt(x)
	case Fraction:
		return v.VisitFraction(x)
	case Complex:
		return v.VisitComplex(x)
	case Identifier:
		return v.VisitIdentifier(x)
	case Application:
		return v.VisitApplication(x)
	case Vector:
		return v.VisitVector(x)
	}
	var zero T
	return zero, fmt.Errorf("%w: %T", ErrUnknownKind, n)
}
