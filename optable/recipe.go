package optable

// Recipe tells the backward direction how to rebuild a kernel node for an
// interchange tag. It is one of Op, Relation or Structure.
type Recipe interface {
	recipe()
}

// Op rebuilds an application of the named kernel operator.
type Op string

// Relation rebuilds a relational expression. The kernel has no structural
// constructor for relations, so the operands are rendered around the
// symbol and the text is re-evaluated.
type Relation string

// Structure rebuilds a dedicated kernel node rather than an application.
type Structure int

const (
	FractionNode Structure = iota + 1
	ComplexNode
	VectorNode
)

func (Op) recipe()        {}
func (Relation) recipe()  {}
func (Structure) recipe() {}

func (s Structure) String() string {
	switch s {
	case FractionNode:
		return "fraction"
	case ComplexNode:
		return "complex"
	case VectorNode:
		return "vector"
	}
	return "structure"
}

var fromTag = map[string]Recipe{
	Rational: FractionNode,
	Complex:  ComplexNode,
	List:     VectorNode,

	Add:      Op("+"),
	Subtract: Op("-"),
	Multiply: Op("*"),
	Divide:   Op("/"),
	Power:    Op("^"),
	"Mod":    Op("%"),
	Negate:   Op("-"),

	Sqrt:  Op("sqrt"),
	Exp:   Op("exp"),
	"Ln":  Op("ln"),
	"Lg":  Op("log10"),
	"Log": Op("log"),

	"Sin":    Op("sin"),
	"Cos":    Op("cos"),
	"Tan":    Op("tan"),
	"Sec":    Op("sec"),
	"Csc":    Op("csc"),
	"Cot":    Op("cot"),
	"Arcsin": Op("asin"),
	"Arccos": Op("acos"),
	"Arctan": Op("atan"),
	"Sinh":   Op("sinh"),
	"Cosh":   Op("cosh"),
	"Tanh":   Op("tanh"),
	"Arsinh": Op("asinh"),
	"Arcosh": Op("acosh"),
	"Artanh": Op("atanh"),

	"Abs":       Op("abs"),
	"Sign":      Op("sign"),
	"Floor":     Op("floor"),
	"Ceil":      Op("ceil"),
	"Round":     Op("round"),
	"Max":       Op("max"),
	"Min":       Op("min"),
	"Factorial": Op("factorial"),
	"GCD":       Op("gcd"),
	"LCM":       Op("lcm"),

	"Real":      Op("re"),
	"Imaginary": Op("im"),
	"Conjugate": Op("conj"),
	"Arg":       Op("arg"),

	"D":           Op("diff"),
	"Integrate":   Op("integrate"),
	"Sum":         Op("sum"),
	"Limit":       Op("limit"),
	"Determinant": Op("det"),
	"Transpose":   Op("transpose"),

	Equal:        Relation("=="),
	NotEqual:     Relation("!="),
	Less:         Relation("<"),
	LessEqual:    Relation("<="),
	Greater:      Relation(">"),
	GreaterEqual: Relation(">="),
}

// Lookup returns the reconstruction recipe for an interchange tag.
func Lookup(tag string) (Recipe, bool) {
	r, ok := fromTag[tag]
	return r, ok
}
