// Package fallback reads kernel text into the second algebra system's
// expression graph, keeping calls to preservable functions symbolic while
// evaluating ordinary arithmetic.
package fallback

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/expr-lang/expr/ast"

	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/sym"
	"github.com/signadot/symx/syntax"
)

// Vars maps variable names to their symbol within one top level parse, so
// that every use of a name yields the same *sym.Symbol.
type Vars map[string]*sym.Symbol

// Parse parses text with a fresh variable cache.
func Parse(text string, preserve Set) (sym.Expr, error) {
	return ParseVars(text, preserve, Vars{})
}

// ParseVars parses text, resolving variables through vars and adding the
// ones it has not seen.
func ParseVars(text string, preserve Set, vars Vars) (sym.Expr, error) {
	res, err := parse(strings.TrimSpace(text), preserve, vars)
	if err != nil {
		return nil, err
	}
	if debug.Fallback() {
		debug.Logf("fallback %q -> %s\n", text, res)
	}
	return res, nil
}

func parse(text string, preserve Set, vars Vars) (sym.Expr, error) {
	if text == "" {
		return nil, &SyntaxError{Text: text}
	}
	name, args, ok := syntax.SplitCall(text)
	if !ok {
		if syntax.IsNumber(text) {
			return number(text)
		}
		if syntax.IsIdentifier(text) {
			return identifier(text, vars), nil
		}
		return general(text, preserve, vars)
	}
	if !preserve[name] {
		return general(text, preserve, vars)
	}
	argTexts := syntax.SplitArgs(args)
	exprs := make([]sym.Expr, len(argTexts))
	for i, a := range argTexts {
		e, err := parse(a, preserve, vars)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return sym.NewFunction(name, exprs...), nil
}

func number(text string) (sym.Expr, error) {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &SyntaxError{Text: text, Err: err}
		}
		return sym.Float(f), nil
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, &SyntaxError{Text: text}
	}
	return sym.NewInteger(v), nil
}

var constants = map[string]sym.Expr{
	"pi":          sym.Pi,
	"π":           sym.Pi,
	"e":           sym.E,
	"i":           sym.I,
	"inf":         sym.Infinity,
	"infinity":    sym.Infinity,
	"euler_gamma": sym.EulerGamma,
}

func identifier(name string, vars Vars) sym.Expr {
	if c, ok := constants[name]; ok {
		return c
	}
	return vars.Symbol(name)
}

// Symbol returns the cached symbol for name, creating it on first use.
func (v Vars) Symbol(name string) *sym.Symbol {
	if s, ok := v[name]; ok {
		return s
	}
	s := sym.NewSymbol(name)
	v[name] = s
	return s
}

func general(text string, preserve Set, vars Vars) (sym.Expr, error) {
	tree, err := syntax.Parse(text)
	if err != nil {
		return nil, &SyntaxError{Text: text, Err: err}
	}
	b := &builder{tree: tree, preserve: preserve, vars: vars}
	return b.build(tree.Node)
}

type builder struct {
	tree     *syntax.Tree
	preserve Set
	vars     Vars
}

func (b *builder) build(n ast.Node) (sym.Expr, error) {
	switch x := n.(type) {
	case *ast.IntegerNode:
		return sym.Int(int64(x.Value)), nil
	case *ast.FloatNode:
		return sym.Float(x.Value), nil
	case *ast.BoolNode:
		if x.Value {
			return sym.True, nil
		}
		return sym.False, nil
	case *ast.IdentifierNode:
		if v, ok := b.tree.BigInt(x.Value); ok {
			return sym.NewInteger(v), nil
		}
		return identifier(x.Value, b.vars), nil
	case *ast.UnaryNode:
		arg, err := b.build(x.Node)
		if err != nil {
			return nil, err
		}
		switch x.Operator {
		case "-":
			return sym.Neg(true, arg), nil
		case "+":
			return arg, nil
		}
	case *ast.BinaryNode:
		return b.binary(x)
	case *ast.CallNode:
		id, ok := x.Callee.(*ast.IdentifierNode)
		if !ok {
			break
		}
		return b.call(id.Value, x.Arguments)
	case *ast.BuiltinNode:
		return b.call(x.Name, x.Arguments)
	case *ast.ArrayNode:
		items, err := b.buildAll(x.Nodes)
		if err != nil {
			return nil, err
		}
		return sym.NewList(items...), nil
	}
	return nil, &SyntaxError{Text: n.String()}
}

func (b *builder) buildAll(ns []ast.Node) ([]sym.Expr, error) {
	res := make([]sym.Expr, len(ns))
	for i, n := range ns {
		e, err := b.build(n)
		if err != nil {
			return nil, err
		}
		res[i] = e
	}
	return res, nil
}

func (b *builder) binary(x *ast.BinaryNode) (sym.Expr, error) {
	l, err := b.build(x.Left)
	if err != nil {
		return nil, err
	}
	r, err := b.build(x.Right)
	if err != nil {
		return nil, err
	}
	switch x.Operator {
	case "+":
		return sym.NewAdd(true, l, r), nil
	case "-":
		return sym.NewAdd(true, l, sym.Neg(true, r)), nil
	case "*":
		return sym.NewMul(true, l, r), nil
	case "/":
		return sym.NewMul(true, l, sym.NewPow(true, r, sym.Int(-1))), nil
	case "^", "**":
		return sym.NewPow(true, l, r), nil
	case "%":
		return mod(l, r), nil
	case "==", "!=", "<", "<=", ">", ">=":
		return sym.NewRelational(x.Operator, l, r), nil
	}
	return nil, &SyntaxError{Text: x.String(), Err: fmt.Errorf("operator %s", x.Operator)}
}

func (b *builder) call(name string, argNodes []ast.Node) (sym.Expr, error) {
	args, err := b.buildAll(argNodes)
	if err != nil {
		return nil, err
	}
	if !b.preserve[name] {
		if v, ok := numeric(name, args); ok {
			return v, nil
		}
	}
	return sym.NewFunction(name, args...), nil
}
