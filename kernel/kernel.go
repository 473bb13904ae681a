// Package kernel is a syntax-level stand-in for the algebra kernel. It
// reads kernel text into native trees without simplifying them, which is
// enough for the converter's textual fallbacks and for round-trip tests.
package kernel

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/expr-lang/expr/ast"

	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/native"
	"github.com/signadot/symx/syntax"
)

var ErrUnsupportedSyntax = errors.New("unsupported syntax")

// Kernel evaluates kernel text. The zero value is ready for use.
type Kernel struct{}

func New() *Kernel {
	return &Kernel{}
}

// Eval parses text into a native tree. Integer literals keep their exact
// value; a literal quotient of two integers becomes a Fraction and a
// negated numeric literal becomes a negative number.
func (k *Kernel) Eval(text string) (native.Node, error) {
	tree, err := syntax.Parse(text)
	if err != nil {
		return nil, err
	}
	res, err := (&builder{tree: tree}).build(tree.Node)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", text, err)
	}
	if debug.Kernel() {
		debug.Logf("kernel %q -> %s\n", text, res)
	}
	return res, nil
}

type builder struct {
	tree *syntax.Tree
}

func (b *builder) build(n ast.Node) (native.Node, error) {
	switch x := n.(type) {
	case *ast.IntegerNode:
		return native.Integer(big.NewInt(int64(x.Value))), nil
	case *ast.FloatNode:
		return native.Double(x.Value), nil
	case *ast.BoolNode:
		if x.Value {
			return native.Identifier("true"), nil
		}
		return native.Identifier("false"), nil
	case *ast.IdentifierNode:
		if v, ok := b.tree.BigInt(x.Value); ok {
			return native.Integer(v), nil
		}
		return native.Identifier(x.Value), nil
	case *ast.UnaryNode:
		return b.unary(x)
	case *ast.BinaryNode:
		return b.binary(x)
	case *ast.CallNode:
		id, ok := x.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, fmt.Errorf("%w: call of %s", ErrUnsupportedSyntax, x.Callee)
		}
		args, err := b.buildAll(x.Arguments)
		if err != nil {
			return nil, err
		}
		return native.Apply(id.Value, args...), nil
	case *ast.BuiltinNode:
		args, err := b.buildAll(x.Arguments)
		if err != nil {
			return nil, err
		}
		return native.Apply(x.Name, args...), nil
	case *ast.ArrayNode:
		elts, err := b.buildAll(x.Nodes)
		if err != nil {
			return nil, err
		}
		return native.Vector(elts), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedSyntax, n)
}

func (b *builder) buildAll(ns []ast.Node) ([]native.Node, error) {
	res := make([]native.Node, len(ns))
	for i, n := range ns {
		v, err := b.build(n)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (b *builder) unary(x *ast.UnaryNode) (native.Node, error) {
	arg, err := b.build(x.Node)
	if err != nil {
		return nil, err
	}
	switch x.Operator {
	case "+":
		return arg, nil
	case "-":
		if b.isLiteral(x.Node) {
			switch v := arg.(type) {
			case native.Int, native.BigInt:
				i, err := intValue(v)
				if err != nil {
					return nil, err
				}
				return native.Integer(i.Neg(i)), nil
			case native.Double:
				return -v, nil
			}
		}
		return native.Apply("-", arg), nil
	}
	return nil, fmt.Errorf("%w: unary %s", ErrUnsupportedSyntax, x.Operator)
}

func (b *builder) binary(x *ast.BinaryNode) (native.Node, error) {
	op := x.Operator
	switch op {
	case "**":
		op = "^"
	case "+", "-", "*", "/", "%", "^", "==", "!=", "<", "<=", ">", ">=":
	default:
		return nil, fmt.Errorf("%w: operator %s", ErrUnsupportedSyntax, op)
	}
	left, err := b.build(x.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.build(x.Right)
	if err != nil {
		return nil, err
	}
	if op == "/" && isInteger(left) && isInteger(right) && b.isLiteral(x.Left) && b.isLiteral(x.Right) {
		return native.Fraction{Num: left, Den: right}, nil
	}
	// sums and products are n-ary in the kernel
	if op == "+" || op == "*" {
		if l, ok := left.(native.Application); ok && l.Op == op && len(l.Args()) >= 2 {
			args := append(append([]native.Node{}, l.Args()...), right)
			return native.Apply(op, args...), nil
		}
	}
	return native.Apply(op, left, right), nil
}

// isLiteral reports whether n is a number literal, possibly negated.
func (b *builder) isLiteral(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.IntegerNode, *ast.FloatNode:
		return true
	case *ast.IdentifierNode:
		_, ok := b.tree.BigInt(x.Value)
		return ok
	case *ast.UnaryNode:
		return x.Operator == "-" && b.isLiteral(x.Node)
	}
	return false
}

func isInteger(n native.Node) bool {
	switch n.(type) {
	case native.Int, native.BigInt:
		return true
	}
	return false
}

func intValue(n native.Node) (*big.Int, error) {
	switch x := n.(type) {
	case native.Int:
		return big.NewInt(int64(x)), nil
	case native.BigInt:
		return x.Big()
	}
	return nil, fmt.Errorf("%w: %s is not an integer", ErrUnsupportedSyntax, n)
}
