package native

import "strconv"

type Kind int

const (
	IntKind Kind = iota
	DoubleKind
	BigIntKind
	FractionKind
	ComplexKind
	IdentifierKind
	ApplicationKind
	VectorKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case DoubleKind:
		return "double"
	case BigIntKind:
		return "bigint"
	case FractionKind:
		return "fraction"
	case ComplexKind:
		return "complex"
	case IdentifierKind:
		return "identifier"
	case ApplicationKind:
		return "application"
	case VectorKind:
		return "vector"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a kernel expression node. The set of implementations is closed:
// Int, Double, BigInt, Fraction, Complex, Identifier, Application and
// Vector.
type Node interface {
	Kind() Kind
	String() string

	sealed()
}

// Int is the kernel's immediate integer.
type Int int32

// Double is an IEEE-754 double.
type Double float64

// BigInt is an arbitrary precision integer as a big-endian magnitude and a
// separate sign in {-1, 0, 1}. A zero sign has an empty magnitude.
type BigInt struct {
	Mag  []byte
	Sign int
}

type Fraction struct {
	Num, Den Node
}

type Complex struct {
	Re, Im Node
}

// Identifier names a variable or a named constant.
type Identifier string

// Application applies Op to Feuille. A Vector feuille holds the arguments
// of a multi-argument call; any other feuille is the single argument.
type Application struct {
	Op      string
	Feuille Node
}

type Vector []Node

func (Int) Kind() Kind         { return IntKind }
func (Double) Kind() Kind      { return DoubleKind }
func (BigInt) Kind() Kind      { return BigIntKind }
func (Fraction) Kind() Kind    { return FractionKind }
func (Complex) Kind() Kind     { return ComplexKind }
func (Identifier) Kind() Kind  { return IdentifierKind }
func (Application) Kind() Kind { return ApplicationKind }
func (Vector) Kind() Kind      { return VectorKind }

func (Int) sealed()         {}
func (Double) sealed()      {}
func (BigInt) sealed()      {}
func (Fraction) sealed()    {}
func (Complex) sealed()     {}
func (Identifier) sealed()  {}
func (Application) sealed() {}
func (Vector) sealed()      {}

// Apply builds an application, placing a single argument directly in the
// feuille and wrapping any other number of arguments in a Vector. A single
// Vector argument is wrapped too, so Args still yields one argument.
func Apply(op string, args ...Node) Application {
	if len(args) == 1 {
		if v, ok := args[0].(Vector); ok {
			return Application{Op: op, Feuille: Vector{v}}
		}
		return Application{Op: op, Feuille: args[0]}
	}
	return Application{Op: op, Feuille: Vector(args)}
}

// Args returns the arguments of the application as derived from the shape
// of its feuille.
func (a Application) Args() []Node {
	if v, ok := a.Feuille.(Vector); ok {
		return v
	}
	if a.Feuille == nil {
		return nil
	}
	return []Node{a.Feuille}
}
