package sym

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type precedence int

const (
	addPrecedence precedence = iota + 1
	mulPrecedence
	negPrecedence
	powPrecedence
	atomPrecedence
)

func (x Integer) String() string  { return x.Value.String() }
func (x Rational) String() string { return x.Value.Num().String() + "/" + x.Value.Denom().String() }
func (s *Symbol) String() string  { return s.Name }
func (c Constant) String() string { return string(c) }

func (f Float) String() string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return string(NaN)
	case math.IsInf(v, 1):
		return string(Infinity)
	case math.IsInf(v, -1):
		return "-" + string(Infinity)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (a *Add) String() string {
	b := &strings.Builder{}
	for i, t := range a.Args {
		if i == 0 {
			b.WriteString(wrap(t, addPrecedence, false))
			continue
		}
		if abs, ok := negativeTerm(t); ok {
			b.WriteString(" - ")
			b.WriteString(wrap(abs, addPrecedence, true))
			continue
		}
		b.WriteString(" + ")
		b.WriteString(wrap(t, addPrecedence, true))
	}
	return b.String()
}

func (m *Mul) String() string {
	args := m.Args
	if len(args) >= 2 && isMinusOne(args[0]) {
		rest := args[1:]
		if len(rest) == 1 {
			return "-" + wrap(rest[0], negPrecedence, true)
		}
		return "-" + wrap(&Mul{Args: rest}, negPrecedence, false)
	}
	parts := make([]string, len(args))
	for i, f := range args {
		parts[i] = wrap(f, mulPrecedence, i > 0)
	}
	return strings.Join(parts, "*")
}

func (p *Pow) String() string {
	if r, ok := p.Exp.(Rational); ok && r.Value.Cmp(Half().Value) == 0 {
		return "sqrt(" + p.Base.String() + ")"
	}
	return wrap(p.Base, powPrecedence, true) + "**" + wrap(p.Exp, powPrecedence, false)
}

func (f *Function) String() string {
	return f.Name + "(" + join(f.Args) + ")"
}

func (r *Relational) String() string {
	switch r.Op {
	case "==":
		return "Eq(" + r.LHS.String() + ", " + r.RHS.String() + ")"
	case "!=":
		return "Ne(" + r.LHS.String() + ", " + r.RHS.String() + ")"
	}
	return r.LHS.String() + " " + r.Op + " " + r.RHS.String()
}

func (l *List) String() string {
	return "[" + join(l.Items) + "]"
}

func join(es []Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func wrap(e Expr, p precedence, strict bool) string {
	ep := precedenceOf(e)
	if ep < p || (strict && (ep == p || ep == negPrecedence)) {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func precedenceOf(e Expr) precedence {
	switch x := e.(type) {
	case Integer:
		if x.Value.Sign() < 0 {
			return negPrecedence
		}
	case Float:
		if x < 0 {
			return negPrecedence
		}
	case Rational:
		if x.Value.Sign() < 0 {
			return negPrecedence
		}
		return mulPrecedence
	case *Add:
		if len(x.Args) > 1 {
			return addPrecedence
		}
	case *Mul:
		if len(x.Args) >= 2 && isMinusOne(x.Args[0]) {
			return negPrecedence
		}
		if len(x.Args) > 1 {
			return mulPrecedence
		}
	case *Pow:
		if r, ok := x.Exp.(Rational); ok && r.Value.Cmp(Half().Value) == 0 {
			return atomPrecedence
		}
		return powPrecedence
	case *Relational:
		return 0
	}
	return atomPrecedence
}

// negativeTerm returns the magnitude of a term that prints with a leading
// minus sign.
func negativeTerm(e Expr) (Expr, bool) {
	switch x := e.(type) {
	case Integer:
		if x.Value.Sign() < 0 {
			v := NewInteger(x.Value)
			v.Value.Neg(v.Value)
			return v, true
		}
	case Rational:
		if x.Value.Sign() < 0 {
			return NewRational(new(big.Rat).Neg(x.Value)), true
		}
	case Float:
		if x < 0 {
			return -x, true
		}
	case *Mul:
		if len(x.Args) < 2 {
			return nil, false
		}
		if isMinusOne(x.Args[0]) {
			if len(x.Args) == 2 {
				return x.Args[1], true
			}
			return &Mul{Args: x.Args[1:]}, true
		}
		if abs, ok := negativeTerm(x.Args[0]); ok && IsNumber(x.Args[0]) {
			return &Mul{Args: append([]Expr{abs}, x.Args[1:]...)}, true
		}
	}
	return nil, false
}

func isMinusOne(e Expr) bool {
	x, ok := e.(Integer)
	return ok && x.Value.IsInt64() && x.Value.Int64() == -1
}
