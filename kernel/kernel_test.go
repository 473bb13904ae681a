package kernel

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/symx/native"
)

func TestEval(t *testing.T) {
	x, y := native.Identifier("x"), native.Identifier("y")
	big30 := native.NewBigInt(bigInt("123456789012345678901234567890"))
	tests := []struct {
		in  string
		out native.Node
	}{
		{"3", native.Int(3)},
		{"-3", native.Int(-3)},
		{"2.5", native.Double(2.5)},
		{"4000000000", native.NewBigInt(bigInt("4000000000"))},
		{"123456789012345678901234567890", big30},
		{"1/2", native.Fraction{Num: native.Int(1), Den: native.Int(2)}},
		{"-1/2", native.Fraction{Num: native.Int(-1), Den: native.Int(2)}},
		{"x/2", native.Apply("/", x, native.Int(2))},
		{"x^(1/2)", native.Apply("^", x, native.Fraction{Num: native.Int(1), Den: native.Int(2)})},
		{"x**2", native.Apply("^", x, native.Int(2))},
		{"-x", native.Apply("-", x)},
		{"x+y+1", native.Apply("+", x, y, native.Int(1))},
		{"x-y-1", native.Apply("-", native.Apply("-", x, y), native.Int(1))},
		{"sin(x)", native.Apply("sin", x)},
		{"max(x,y)", native.Apply("max", x, y)},
		{"abs(x)", native.Apply("abs", x)},
		{"f()", native.Apply("f")},
		{"[1,x]", native.Vector{native.Int(1), x}},
		{"x+1==0", native.Apply("==", native.Apply("+", x, native.Int(1)), native.Int(0))},
		{"π", native.Identifier("π")},
		{"sum([1,2,3])", native.Application{Op: "sum", Feuille: native.Vector{
			native.Vector{native.Int(1), native.Int(2), native.Int(3)}}}},
		{"det([[1,2],[3,4]])", native.Application{Op: "det", Feuille: native.Vector{native.Vector{
			native.Vector{native.Int(1), native.Int(2)},
			native.Vector{native.Int(3), native.Int(4)}}}}},
	}
	k := New()
	for _, tc := range tests {
		got, err := k.Eval(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.out, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	x, y := native.Identifier("x"), native.Identifier("y")
	trees := []native.Node{
		native.Apply("-", x, native.Apply("-", y, native.Int(1))),
		native.Apply("*", native.Apply("+", x, native.Int(1)), y),
		native.Apply("*", x, native.Int(-2)),
		native.Apply("^", native.Int(-2), x),
		native.Apply("^", x, native.Apply("^", y, native.Int(2))),
		native.Apply("-", native.Apply("-", x)),
		native.Apply("/", native.Apply("+", x, native.Int(1)), native.Int(2)),
		native.Apply("<=", native.Apply("sin", x), native.Fraction{Num: native.Int(1), Den: native.Int(3)}),
		native.Apply("exp", native.Int(1)),
		native.Apply("sum", native.Vector{x, y}),
		native.Vector{native.Double(0.5), native.NewBigInt(bigInt("-99999999999999999999"))},
	}
	k := New()
	for _, tree := range trees {
		text := native.Render(tree)
		got, err := k.Eval(text)
		if err != nil {
			t.Errorf("%s: %v", text, err)
			continue
		}
		if diff := cmp.Diff(tree, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", text, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	k := New()
	for _, in := range []string{`"str"`, "x ? y : 1", "a.b", "x and y"} {
		if _, err := k.Eval(in); !errors.Is(err, ErrUnsupportedSyntax) {
			t.Errorf("%s: got %v", in, err)
		}
	}
	if _, err := k.Eval("1 +"); err == nil {
		t.Errorf("expected parse error")
	}
}

func bigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}
