package native

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

type precedence int

const (
	relPrecedence precedence = iota
	sumPrecedence
	prodPrecedence
	negPrecedence
	powPrecedence
	atomicPrecedence
)

// Relations lists the kernel's relational operators.
var Relations = []string{"==", "!=", "<", "<=", ">", ">="}

func isRelation(op string) bool {
	for _, r := range Relations {
		if r == op {
			return true
		}
	}
	return false
}

// Render returns the kernel's textual form of n.
func Render(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (d Double) String() string {
	f := float64(d)
	switch {
	case math.IsNaN(f):
		return "undef"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (b BigInt) String() string {
	x, err := b.Big()
	if err != nil {
		return "undef"
	}
	return x.String()
}

func (f Fraction) String() string {
	return wrap(f.Num, prodPrecedence, false) + "/" + wrap(f.Den, prodPrecedence, true)
}

func (c Complex) String() string {
	im := imagString(c.Im)
	if isZero(c.Re) {
		return im
	}
	if strings.HasPrefix(im, "-") {
		return c.Re.String() + im
	}
	return c.Re.String() + "+" + im
}

func imagString(im Node) string {
	switch x := im.(type) {
	case Int:
		switch x {
		case 1:
			return "i"
		case -1:
			return "-i"
		}
	}
	if precedenceOf(im) == negPrecedence {
		return "-" + wrap(negated(im), prodPrecedence, false) + "*i"
	}
	return wrap(im, prodPrecedence, false) + "*i"
}

func (id Identifier) String() string {
	return string(id)
}

func (v Vector) String() string {
	return "[" + joinNodes(v) + "]"
}

func (a Application) String() string {
	args := a.Args()
	switch {
	case len(args) == 1 && a.Op == "-":
		return "-" + wrap(args[0], negPrecedence, true)
	case len(args) >= 2 && (a.Op == "+" || a.Op == "*"):
		return infix(a.Op, args)
	case len(args) == 2 && (a.Op == "-" || a.Op == "/" || a.Op == "%"):
		return infix(a.Op, args)
	case len(args) == 2 && a.Op == "^":
		return wrap(args[0], powPrecedence, true) + "^" + wrap(args[1], powPrecedence, false)
	case len(args) == 2 && isRelation(a.Op):
		return wrap(args[0], relPrecedence, true) + a.Op + wrap(args[1], relPrecedence, true)
	}
	return a.Op + "(" + joinNodes(args) + ")"
}

func infix(op string, args []Node) string {
	p := opPrecedence(op)
	b := &strings.Builder{}
	for i, arg := range args {
		if i == 0 {
			b.WriteString(wrap(arg, p, false))
			continue
		}
		b.WriteString(op)
		b.WriteString(wrap(arg, p, true))
	}
	return b.String()
}

// wrap parenthesises n when it binds looser than an operand position of
// precedence p. Strict positions (right of - and /, left of ^, operands
// of unary minus) also parenthesise equal precedence and negative values.
func wrap(n Node, p precedence, strict bool) string {
	np := precedenceOf(n)
	s := n.String()
	if np < p || (strict && (np == p || np == negPrecedence)) {
		return "(" + s + ")"
	}
	return s
}

func opPrecedence(op string) precedence {
	switch op {
	case "+", "-":
		return sumPrecedence
	case "*", "/", "%":
		return prodPrecedence
	case "^":
		return powPrecedence
	}
	if isRelation(op) {
		return relPrecedence
	}
	return atomicPrecedence
}

func precedenceOf(n Node) precedence {
	switch x := n.(type) {
	case Int:
		if x < 0 {
			return negPrecedence
		}
	case Double:
		if x < 0 || math.IsInf(float64(x), -1) {
			return negPrecedence
		}
	case BigInt:
		if x.Sign < 0 {
			return negPrecedence
		}
	case Fraction:
		return prodPrecedence
	case Complex:
		if !isZero(x.Re) {
			return sumPrecedence
		}
		if im, ok := x.Im.(Int); ok && im == 1 {
			return atomicPrecedence
		}
		if precedenceOf(x.Im) == negPrecedence {
			return negPrecedence
		}
		return prodPrecedence
	case Application:
		args := x.Args()
		if len(args) == 1 && x.Op == "-" {
			return negPrecedence
		}
		if len(args) >= 2 {
			return opPrecedence(x.Op)
		}
	}
	return atomicPrecedence
}

func isZero(n Node) bool {
	switch x := n.(type) {
	case Int:
		return x == 0
	case Double:
		return x == 0
	case BigInt:
		return x.Sign == 0
	}
	return false
}

func negated(n Node) Node {
	switch x := n.(type) {
	case Int:
		if x == math.MinInt32 {
			return Integer(new(big.Int).Neg(big.NewInt(int64(x))))
		}
		return -x
	case Double:
		return -x
	case BigInt:
		return BigInt{Mag: x.Mag, Sign: -x.Sign}
	case Application:
		if args := x.Args(); len(args) == 1 && x.Op == "-" {
			return args[0]
		}
	}
	return Apply("-", n)
}

func joinNodes(ns []Node) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = Render(n)
	}
	return strings.Join(parts, ",")
}
