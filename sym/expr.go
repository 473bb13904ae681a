// Package sym models the expression graph of the second algebra system.
//
// Composite constructors take an evaluate flag. With evaluation, sums and
// products are flattened and their numeric terms folded; without it the
// terms are kept exactly as given, which is how an interchange tree is
// mirrored structurally.
package sym

import (
	"math/big"
)

// Expr is a node of the expression graph. Implementations are Integer,
// Rational, Float, *Symbol, Constant, *Add, *Mul, *Pow, *Function,
// *Relational and *List.
type Expr interface {
	String() string

	expr()
}

type Integer struct {
	Value *big.Int
}

// Rational is an exact fraction whose denominator is not 1.
type Rational struct {
	Value *big.Rat
}

type Float float64

// Symbol is a free variable. Its pointer is its identity.
type Symbol struct {
	Name string
}

type Constant string

const (
	Pi         Constant = "pi"
	E          Constant = "E"
	I          Constant = "I"
	Infinity   Constant = "oo"
	EulerGamma Constant = "EulerGamma"
	NaN        Constant = "nan"
	True       Constant = "True"
	False      Constant = "False"
)

type Add struct {
	Args []Expr
}

type Mul struct {
	Args []Expr
}

type Pow struct {
	Base, Exp Expr
}

// Function is an opaque named application. It is never evaluated.
type Function struct {
	Name string
	Args []Expr
}

// Relational compares two expressions with one of == != < <= > >=.
type Relational struct {
	Op       string
	LHS, RHS Expr
}

type List struct {
	Items []Expr
}

func (Integer) expr()     {}
func (Rational) expr()    {}
func (Float) expr()       {}
func (*Symbol) expr()     {}
func (Constant) expr()    {}
func (*Add) expr()        {}
func (*Mul) expr()        {}
func (*Pow) expr()        {}
func (*Function) expr()   {}
func (*Relational) expr() {}
func (*List) expr()       {}

func Int(v int64) Integer {
	return Integer{Value: big.NewInt(v)}
}

func NewInteger(v *big.Int) Integer {
	return Integer{Value: new(big.Int).Set(v)}
}

// NewRational returns v as an Integer when it is whole, otherwise as a
// Rational.
func NewRational(v *big.Rat) Expr {
	if v.IsInt() {
		return NewInteger(v.Num())
	}
	return Rational{Value: new(big.Rat).Set(v)}
}

// Half is the rational exponent of a square root.
func Half() Rational {
	return Rational{Value: big.NewRat(1, 2)}
}

func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

func NewFunction(name string, args ...Expr) *Function {
	return &Function{Name: name, Args: args}
}

func NewRelational(op string, lhs, rhs Expr) *Relational {
	return &Relational{Op: op, LHS: lhs, RHS: rhs}
}

func NewList(items ...Expr) *List {
	return &List{Items: items}
}

// Sqrt is x**(1/2).
func Sqrt(evaluate bool, x Expr) Expr {
	return NewPow(evaluate, x, Half())
}

// Neg is -1*x.
func Neg(evaluate bool, x Expr) Expr {
	return NewMul(evaluate, Int(-1), x)
}

// Exact returns the exact value of an Integer or Rational.
func Exact(e Expr) (*big.Rat, bool) {
	switch x := e.(type) {
	case Integer:
		return new(big.Rat).SetInt(x.Value), true
	case Rational:
		return new(big.Rat).Set(x.Value), true
	}
	return nil, false
}

// IsNumber reports whether e is an Integer, Rational or Float.
func IsNumber(e Expr) bool {
	switch e.(type) {
	case Integer, Rational, Float:
		return true
	}
	return false
}

func toFloat(e Expr) float64 {
	switch x := e.(type) {
	case Float:
		return float64(x)
	case Integer:
		f, _ := new(big.Float).SetInt(x.Value).Float64()
		return f
	case Rational:
		f, _ := x.Value.Float64()
		return f
	}
	return 0
}
