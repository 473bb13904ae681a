package fallback

import (
	"errors"
	"math/big"
	"testing"

	"github.com/signadot/symx/sym"
)

func TestParse(t *testing.T) {
	x := sym.NewSymbol("x")
	big30, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	tests := []struct {
		in  string
		out sym.Expr
	}{
		{"sqrt(2)", sym.NewFunction("sqrt", sym.Int(2))},
		{"2", sym.Int(2)},
		{"-2.5", sym.Float(-2.5)},
		{"x", x},
		{"pi", sym.Pi},
		{"π", sym.Pi},
		{"123456789012345678901234567890", sym.NewInteger(big30)},
		{"123456789012345678901234567890+1", sym.NewInteger(new(big.Int).Add(big30, big.NewInt(1)))},
		{"1+2*3", sym.Int(7)},
		{"2^3^2", sym.Int(512)},
		{"1/2+1/3", sym.NewRational(big.NewRat(5, 6))},
		{"-2^2", sym.Int(-4)},
		{"x+1", &sym.Add{Args: []sym.Expr{x, sym.Int(1)}}},
		{"__big0+123456789012345678901234567890", &sym.Add{Args: []sym.Expr{sym.NewSymbol("__big0"), sym.NewInteger(big30)}}},
		{"sin(x)+1", &sym.Add{Args: []sym.Expr{sym.NewFunction("sin", x), sym.Int(1)}}},
		{"sqrt(1+1)*x", &sym.Mul{Args: []sym.Expr{sym.NewFunction("sqrt", sym.Int(2)), x}}},
		{"exp(sqrt(x))", sym.NewFunction("exp", sym.NewFunction("sqrt", x))},
		{"factorial(5)", sym.Int(120)},
		{"floor(-3/2)", sym.Int(-2)},
		{"ceil(-3/2)", sym.Int(-1)},
		{"max(1, 5/2, 2)", sym.NewRational(big.NewRat(5, 2))},
		{"gcd(12, 18)", sym.Int(6)},
		{"lcm(4, 6)", sym.Int(12)},
		{"7 % -3", sym.Int(-2)},
		{"f(x, 2)", sym.NewFunction("f", x, sym.Int(2))},
		{"max(x, 1)", sym.NewFunction("max", x, sym.Int(1))},
		{"[1, x]", sym.NewList(sym.Int(1), x)},
		{"x<=1", sym.NewRelational("<=", x, sym.Int(1))},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in, Default())
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if !sym.Equal(got, tc.out) {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.out)
		}
	}
}

func TestPreserveIsConfigurable(t *testing.T) {
	got, err := Parse("abs(-3)", Default())
	if err != nil {
		t.Fatal(err)
	}
	if !sym.Equal(got, sym.NewFunction("abs", sym.Int(-3))) {
		t.Errorf("got %s", got)
	}
	got, err = Parse("factorial(3)", NewSet("factorial"))
	if err != nil {
		t.Fatal(err)
	}
	if !sym.Equal(got, sym.NewFunction("factorial", sym.Int(3))) {
		t.Errorf("got %s", got)
	}
}

func TestVariableCache(t *testing.T) {
	got, err := Parse("x*sin(x)", Default())
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(*sym.Mul)
	if !ok || len(m.Args) != 2 {
		t.Fatalf("got %#v", got)
	}
	f, ok := m.Args[1].(*sym.Function)
	if !ok {
		t.Fatalf("got %#v", m.Args[1])
	}
	if m.Args[0] != f.Args[0] {
		t.Errorf("x resolved to distinct symbols")
	}

	vars := Vars{}
	a, _ := ParseVars("y", Default(), vars)
	b, _ := ParseVars("y+1", Default(), vars)
	if a != b.(*sym.Add).Args[0] {
		t.Errorf("shared cache should give the same symbol")
	}
	c, _ := Parse("y", Default())
	if a == c {
		t.Errorf("separate parses should not share symbols")
	}
}

func TestSyntaxError(t *testing.T) {
	for _, in := range []string{"", "1 +", "sqrt(1 +)", `"str"`} {
		_, err := Parse(in, Default())
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v", in, err)
			continue
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: not a *SyntaxError", in)
		}
	}
}

func TestParseSet(t *testing.T) {
	s := ParseSet(" sqrt, exp,,")
	if len(s) != 2 || !s["sqrt"] || !s["exp"] {
		t.Errorf("got %v", s)
	}
}
