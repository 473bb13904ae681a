package convert

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/mir"
	"github.com/signadot/symx/native"
	"github.com/signadot/symx/optable"
)

// Forward converts a kernel tree to an interchange tree with a default
// Converter.
func Forward(n native.Node) (*mir.Node, error) {
	return New().Forward(n)
}

// Forward converts a kernel tree to an interchange tree. Unary minus
// becomes Negate and a power of exactly one half becomes Sqrt; operators
// missing from the table get a capitalised tag.
func (c *Converter) Forward(n native.Node) (*mir.Node, error) {
	res, err := forward{c}.node(n)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("forward %s -> %s\n", n, res)
	}
	return res, nil
}

type forward struct {
	c *Converter
}

func (f forward) node(n native.Node) (*mir.Node, error) {
	res, err := native.Walk[*mir.Node](n, f)
	var uv *UnsupportedVariantError
	if errors.Is(err, native.ErrUnknownKind) && !errors.As(err, &uv) {
		return nil, &UnsupportedVariantError{Side: NativeSide, Tag: fmt.Sprintf("%T", n), Err: err}
	}
	return res, err
}

func (f forward) nodes(ns []native.Node) ([]*mir.Node, error) {
	res := make([]*mir.Node, len(ns))
	for i, n := range ns {
		m, err := f.node(n)
		if err != nil {
			return nil, err
		}
		res[i] = m
	}
	return res, nil
}

func (forward) VisitInt(x native.Int) (*mir.Node, error) {
	return mir.FromInt(int64(x)), nil
}

func (forward) VisitDouble(x native.Double) (*mir.Node, error) {
	return mir.FromFloat(float64(x)), nil
}

func (forward) VisitBigInt(x native.BigInt) (*mir.Node, error) {
	v, err := native.DecodeBig(x.Mag, x.Sign)
	if err != nil {
		return nil, err
	}
	return mir.FromBig(v), nil
}

func (f forward) VisitFraction(x native.Fraction) (*mir.Node, error) {
	args, err := f.nodes([]native.Node{x.Num, x.Den})
	if err != nil {
		return nil, err
	}
	return mir.Fn(optable.Rational, args...), nil
}

func (f forward) VisitComplex(x native.Complex) (*mir.Node, error) {
	args, err := f.nodes([]native.Node{x.Re, x.Im})
	if err != nil {
		return nil, err
	}
	return mir.Fn(optable.Complex, args...), nil
}

func (forward) VisitIdentifier(x native.Identifier) (*mir.Node, error) {
	if name, ok := optable.ConstantName(string(x)); ok {
		return mir.Sym(name), nil
	}
	return mir.Sym(string(x)), nil
}

func (f forward) VisitApplication(x native.Application) (*mir.Node, error) {
	args, err := f.nodes(x.Args())
	if err != nil {
		return nil, err
	}
	switch {
	case x.Op == "-" && len(args) == 1:
		return mir.Fn(optable.Negate, args...), nil
	case x.Op == "^" && len(args) == 2 && isHalf(args[1]):
		return mir.Fn(optable.Sqrt, args[0]), nil
	}
	tag, ok := optable.CallTag(x.Op, len(args))
	if !ok {
		tag = optable.FallbackTag(x.Op)
		if debug.Convert() {
			debug.Logf("forward: no tag for %q, using %s\n", x.Op, tag)
		}
	}
	return mir.Fn(tag, args...), nil
}

func (f forward) VisitVector(x native.Vector) (*mir.Node, error) {
	args, err := f.nodes(x)
	if err != nil {
		return nil, err
	}
	return mir.Fn(optable.List, args...), nil
}

var half = big.NewRat(1, 2)

// isHalf reports whether m is exactly one half, either as a rational
// number or as a Rational function of two exact numbers.
func isHalf(m *mir.Node) bool {
	if r, ok := m.Exact(); ok {
		return r.Cmp(half) == 0
	}
	if !m.IsFunction(optable.Rational) || len(m.Args) != 2 {
		return false
	}
	num, ok := m.Args[0].Exact()
	if !ok {
		return false
	}
	den, ok := m.Args[1].Exact()
	if !ok || den.Sign() == 0 {
		return false
	}
	return new(big.Rat).Quo(num, den).Cmp(half) == 0
}
