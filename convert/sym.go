package convert

import (
	"fmt"
	"math/big"

	"github.com/signadot/symx/fallback"
	"github.com/signadot/symx/mir"
	"github.com/signadot/symx/native"
	"github.com/signadot/symx/optable"
	"github.com/signadot/symx/sym"
)

var symConstants = map[string]sym.Constant{
	optable.Pi:            sym.Pi,
	optable.ExponentialE:  sym.E,
	optable.ImaginaryUnit: sym.I,
	"PositiveInfinity":    sym.Infinity,
	"EulerGamma":          sym.EulerGamma,
	"Undefined":           sym.NaN,
	"True":                sym.True,
	"False":               sym.False,
}

var fromSymConstants = map[sym.Constant]string{}

func init() {
	for name, c := range symConstants {
		fromSymConstants[c] = name
	}
}

// ToSym mirrors an interchange tree in the second system without
// evaluating it. Each variable name maps to one symbol for the whole tree.
// Tags with no structural constructor go through the kernel's text and
// the syntax fallback.
func (c *Converter) ToSym(m *mir.Node) (sym.Expr, error) {
	return c.toSym(m, fallback.Vars{})
}

func (c *Converter) toSym(m *mir.Node, vars fallback.Vars) (sym.Expr, error) {
	if m == nil {
		return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: "nil"}
	}
	switch m.Type {
	case mir.NumberType:
		switch {
		case m.Int64 != nil:
			return sym.Int(*m.Int64), nil
		case m.Big != nil:
			return sym.NewInteger(m.Big), nil
		case m.Float64 != nil:
			return sym.Float(*m.Float64), nil
		case m.Rat != nil:
			return sym.NewRational(m.Rat), nil
		}
		return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: m.Type.String(), Err: mir.ErrNoNumber}
	case mir.SymbolType:
		if k, ok := symConstants[m.Name]; ok {
			return k, nil
		}
		return vars.Symbol(m.Name), nil
	case mir.FunctionType:
		return c.functionToSym(m, vars)
	}
	return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: m.Type.String()}
}

func (c *Converter) functionToSym(m *mir.Node, vars fallback.Vars) (sym.Expr, error) {
	recipe, mapped := optable.Lookup(m.Head)
	if !mapped || recipe == optable.ComplexNode {
		return c.viaText(m, vars)
	}
	args := make([]sym.Expr, len(m.Args))
	for i, a := range m.Args {
		e, err := c.toSym(a, vars)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, m.Head, n, len(args))
		}
		return nil
	}
	switch m.Head {
	case optable.Add:
		return sym.NewAdd(false, args...), nil
	case optable.Multiply:
		return sym.NewMul(false, args...), nil
	case optable.Power:
		if err := want(2); err != nil {
			return nil, err
		}
		return sym.NewPow(false, args[0], args[1]), nil
	case optable.Negate:
		if err := want(1); err != nil {
			return nil, err
		}
		return sym.Neg(false, args[0]), nil
	case optable.Subtract:
		if err := want(2); err != nil {
			return nil, err
		}
		return sym.NewAdd(false, args[0], sym.Neg(false, args[1])), nil
	case optable.Divide:
		if err := want(2); err != nil {
			return nil, err
		}
		return sym.NewMul(false, args[0], sym.NewPow(false, args[1], sym.Int(-1))), nil
	case optable.Sqrt:
		if err := want(1); err != nil {
			return nil, err
		}
		return sym.Sqrt(false, args[0]), nil
	case optable.Rational:
		if err := want(2); err != nil {
			return nil, err
		}
		p, pok := sym.Exact(args[0])
		q, qok := sym.Exact(args[1])
		if pok && qok && q.Sign() != 0 {
			return sym.NewRational(new(big.Rat).Quo(p, q)), nil
		}
		return sym.NewMul(false, args[0], sym.NewPow(false, args[1], sym.Int(-1))), nil
	case "Mod":
		return sym.NewFunction("Mod", args...), nil
	}
	switch r := recipe.(type) {
	case optable.Structure:
		if r == optable.VectorNode {
			return sym.NewList(args...), nil
		}
	case optable.Relation:
		if err := want(2); err != nil {
			return nil, err
		}
		return sym.NewRelational(string(r), args[0], args[1]), nil
	case optable.Op:
		return sym.NewFunction(string(r), args...), nil
	}
	return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: m.Head}
}

// viaText renders m as kernel text and reads it back with the syntax
// fallback, sharing the variable cache with the enclosing tree.
func (c *Converter) viaText(m *mir.Node, vars fallback.Vars) (sym.Expr, error) {
	n, err := c.Backward(m)
	if err != nil {
		return nil, err
	}
	return fallback.ParseVars(native.Render(n), c.preserve, vars)
}

// FromSym converts a second-system expression to an interchange tree.
// x**(1/2) becomes Sqrt and -1*x becomes Negate.
func (c *Converter) FromSym(e sym.Expr) (*mir.Node, error) {
	switch x := e.(type) {
	case sym.Integer:
		return intNode(x.Value), nil
	case sym.Rational:
		return mir.Fn(optable.Rational, intNode(x.Value.Num()), intNode(x.Value.Denom())), nil
	case sym.Float:
		return mir.FromFloat(float64(x)), nil
	case *sym.Symbol:
		return mir.Sym(x.Name), nil
	case sym.Constant:
		if name, ok := fromSymConstants[x]; ok {
			return mir.Sym(name), nil
		}
		return mir.Sym(string(x)), nil
	case *sym.Add:
		return c.fromSymFn(optable.Add, x.Args)
	case *sym.Mul:
		if len(x.Args) >= 2 {
			if v, ok := x.Args[0].(sym.Integer); ok && v.Value.IsInt64() && v.Value.Int64() == -1 {
				rest := x.Args[1:]
				if len(rest) == 1 {
					return c.fromSymFn(optable.Negate, rest)
				}
				inner, err := c.fromSymFn(optable.Multiply, rest)
				if err != nil {
					return nil, err
				}
				return mir.Fn(optable.Negate, inner), nil
			}
		}
		return c.fromSymFn(optable.Multiply, x.Args)
	case *sym.Pow:
		if r, ok := x.Exp.(sym.Rational); ok && r.Value.Cmp(half) == 0 {
			return c.fromSymFn(optable.Sqrt, []sym.Expr{x.Base})
		}
		return c.fromSymFn(optable.Power, []sym.Expr{x.Base, x.Exp})
	case *sym.Function:
		tag, ok := optable.CallTag(x.Name, len(x.Args))
		if !ok {
			tag = optable.FallbackTag(x.Name)
		}
		return c.fromSymFn(tag, x.Args)
	case *sym.Relational:
		tag, ok := optable.Tag(x.Op)
		if !ok {
			return nil, &UnsupportedVariantError{Side: SymSide, Tag: x.Op}
		}
		return c.fromSymFn(tag, []sym.Expr{x.LHS, x.RHS})
	case *sym.List:
		return c.fromSymFn(optable.List, x.Items)
	}
	return nil, &UnsupportedVariantError{Side: SymSide, Tag: fmt.Sprintf("%T", e)}
}

func (c *Converter) fromSymFn(head string, es []sym.Expr) (*mir.Node, error) {
	args := make([]*mir.Node, len(es))
	for i, e := range es {
		m, err := c.FromSym(e)
		if err != nil {
			return nil, err
		}
		args[i] = m
	}
	return mir.Fn(head, args...), nil
}

// NativeToSym renders a kernel tree and parses it with the syntax
// fallback, keeping the preserved functions symbolic.
func (c *Converter) NativeToSym(n native.Node) (sym.Expr, error) {
	return fallback.Parse(native.Render(n), c.preserve)
}

func intNode(v *big.Int) *mir.Node {
	if v.IsInt64() {
		return mir.FromInt(v.Int64())
	}
	return mir.FromBig(v)
}
