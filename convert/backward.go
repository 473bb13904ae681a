package convert

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/mir"
	"github.com/signadot/symx/native"
	"github.com/signadot/symx/optable"
)

// Backward converts an interchange tree to a kernel tree with a Converter
// configured by opts.
func Backward(m *mir.Node, opts ...Option) (native.Node, error) {
	return New(opts...).Backward(m)
}

// Backward converts an interchange tree to a kernel tree. Relations and
// unmapped tags are rebuilt by evaluating their text with the configured
// evaluator; an unmapped tag also produces an UnmappedOperatorError
// warning.
func (c *Converter) Backward(m *mir.Node) (native.Node, error) {
	res, err := c.backward(m)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("backward %s -> %s\n", m, res)
	}
	return res, nil
}

func (c *Converter) backward(m *mir.Node) (native.Node, error) {
	if m == nil {
		return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: "nil"}
	}
	switch m.Type {
	case mir.NumberType:
		return c.number(m)
	case mir.SymbolType:
		return c.symbol(m)
	case mir.FunctionType:
		return c.function(m)
	}
	return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: m.Type.String()}
}

func (c *Converter) backwardAll(ms []*mir.Node) ([]native.Node, error) {
	res := make([]native.Node, len(ms))
	for i, m := range ms {
		n, err := c.backward(m)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func (c *Converter) number(m *mir.Node) (native.Node, error) {
	switch {
	case m.Int64 != nil:
		v := *m.Int64
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return native.Int(v), nil
		}
		return c.integer(big.NewInt(v))
	case m.Big != nil:
		return c.integer(m.Big)
	case m.Float64 != nil:
		return native.Double(*m.Float64), nil
	case m.Rat != nil:
		num, err := c.integer(m.Rat.Num())
		if err != nil {
			return nil, err
		}
		den, err := c.integer(m.Rat.Denom())
		if err != nil {
			return nil, err
		}
		return native.Fraction{Num: num, Den: den}, nil
	}
	return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: m.Type.String(), Err: mir.ErrNoNumber}
}

// integer builds the kernel node for x, an Int when it fits and otherwise
// a BigInt from the transcoder or from evaluating its decimal text.
func (c *Converter) integer(x *big.Int) (native.Node, error) {
	if x.IsInt64() {
		if v := x.Int64(); v >= math.MinInt32 && v <= math.MaxInt32 {
			return native.Int(v), nil
		}
	}
	if c.textualBig {
		return c.evalText(x.String())
	}
	return native.NewBigInt(x), nil
}

func (c *Converter) symbol(m *mir.Node) (native.Node, error) {
	switch m.Name {
	case optable.ExponentialE:
		return native.Apply("exp", native.Int(1)), nil
	case optable.ImaginaryUnit:
		return native.Complex{Re: native.Int(0), Im: native.Int(1)}, nil
	}
	if name, ok := optable.NativeConstant(m.Name); ok {
		return native.Identifier(name), nil
	}
	return native.Identifier(m.Name), nil
}

func (c *Converter) function(m *mir.Node) (native.Node, error) {
	recipe, ok := optable.Lookup(m.Head)
	if !ok {
		return c.unmapped(m)
	}
	args, err := c.backwardAll(m.Args)
	if err != nil {
		return nil, err
	}
	switch r := recipe.(type) {
	case optable.Structure:
		return structure(m.Head, r, args)
	case optable.Relation:
		if err := arity(m.Head, args, 2); err != nil {
			return nil, err
		}
		return c.evalText(native.Render(native.Apply(string(r), args...)))
	case optable.Op:
		if m.Head == optable.Negate {
			if err := arity(m.Head, args, 1); err != nil {
				return nil, err
			}
		}
		return native.Apply(string(r), args...), nil
	}
	return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: m.Head}
}

func structure(head string, s optable.Structure, args []native.Node) (native.Node, error) {
	switch s {
	case optable.FractionNode:
		if err := arity(head, args, 2); err != nil {
			return nil, err
		}
		return native.Fraction{Num: args[0], Den: args[1]}, nil
	case optable.ComplexNode:
		if err := arity(head, args, 2); err != nil {
			return nil, err
		}
		return native.Complex{Re: args[0], Im: args[1]}, nil
	case optable.VectorNode:
		return native.Vector(args), nil
	}
	return nil, &UnsupportedVariantError{Side: InterchangeSide, Tag: head}
}

// unmapped rebuilds a call to an unknown tag by evaluating it under the
// lower-cased tag name.
func (c *Converter) unmapped(m *mir.Node) (native.Node, error) {
	args, err := c.backwardAll(m.Args)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = native.Render(a)
	}
	text := optable.FallbackOp(m.Head) + "(" + strings.Join(parts, ",") + ")"
	c.warn(&UnmappedOperatorError{Tag: m.Head, Fallback: text})
	return c.evalText(text)
}

func (c *Converter) evalText(text string) (native.Node, error) {
	if c.eval == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoEvaluator, text)
	}
	n, err := c.eval.Eval(text)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", text, err)
	}
	return n, nil
}

func arity(head string, args []native.Node, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, head, n, len(args))
	}
	return nil
}
