package convert

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/symx/kernel"
	"github.com/signadot/symx/mir"
	"github.com/signadot/symx/native"
)

func TestBackward(t *testing.T) {
	x := native.Identifier("x")
	tests := []struct {
		name string
		in   string
		out  native.Node
	}{
		{"int", `5`, native.Int(5)},
		{"int64 beyond int32", `4294967296`, native.NewBigInt(big.NewInt(1 << 32))},
		{"float", `2.5`, native.Double(2.5)},
		{"rational function", `["Rational",1,3]`, native.Fraction{Num: native.Int(1), Den: native.Int(3)}},
		{"complex", `["Complex",0,-1]`, native.Complex{Re: native.Int(0), Im: native.Int(-1)}},
		{"list", `["List",1,"x"]`, native.Vector{native.Int(1), x}},
		{"variable", `"x"`, x},
		{"pi", `"Pi"`, native.Identifier("pi")},
		{"infinity", `"PositiveInfinity"`, native.Identifier("inf")},
		{"exponential e", `"ExponentialE"`, native.Apply("exp", native.Int(1))},
		{"imaginary unit", `"ImaginaryUnit"`, native.Complex{Re: native.Int(0), Im: native.Int(1)}},
		{"negate", `["Negate","x"]`, native.Apply("-", x)},
		{"sqrt", `["Sqrt","x"]`, native.Apply("sqrt", x)},
		{"ln", `["Ln","x"]`, native.Apply("ln", x)},
		{"add", `["Add","x",1,2]`, native.Apply("+", x, native.Int(1), native.Int(2))},
		{"sin", `["Sin",["Multiply",2,"x"]]`, native.Apply("sin", native.Apply("*", native.Int(2), x))},
		{"single list argument", `["Sum",["List",1,2,3]]`, native.Application{Op: "sum", Feuille: native.Vector{
			native.Vector{native.Int(1), native.Int(2), native.Int(3)}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mir.FromJSON([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			got, err := Backward(m)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.out, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestBackwardNumbers(t *testing.T) {
	got, err := Backward(mir.FromRat(big.NewRat(-2, 6)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(native.Node(native.Fraction{Num: native.Int(-1), Den: native.Int(3)}), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	v, _ := new(big.Int).SetString("99999999999999999999999", 10)
	got, err = Backward(mir.FromBig(v))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := got.(native.BigInt)
	if !ok {
		t.Fatalf("got %T", got)
	}
	if bv, err := b.Big(); err != nil || bv.Cmp(v) != 0 {
		t.Errorf("got %v %v", bv, err)
	}
	got, err = Backward(mir.FromBig(big.NewInt(-12)))
	if err != nil || got != native.Int(-12) {
		t.Errorf("small big: got %v %v", got, err)
	}
}

func TestBackwardTextualBigInts(t *testing.T) {
	var texts []string
	k := kernel.New()
	eval := native.EvalFunc(func(text string) (native.Node, error) {
		texts = append(texts, text)
		return k.Eval(text)
	})
	v, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	got, err := Backward(mir.FromBig(v), WithEvaluator(eval), TextualBigInts(true))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{v.String()}, texts); diff != "" {
		t.Errorf("evaluated (-want +got):\n%s", diff)
	}
	if native.Render(got) != v.String() {
		t.Errorf("got %s", got)
	}
	if _, err := Backward(mir.FromBig(v), TextualBigInts(true)); !errors.Is(err, ErrNoEvaluator) {
		t.Errorf("got %v", err)
	}
}

func TestBackwardRelation(t *testing.T) {
	m := mir.Fn("LessEqual", mir.Fn("Add", mir.Sym("x"), mir.FromInt(1)), mir.FromRat(big.NewRat(1, 2)))
	if _, err := Backward(m); !errors.Is(err, ErrNoEvaluator) {
		t.Errorf("without evaluator: got %v", err)
	}
	got, err := Backward(m, WithEvaluator(kernel.New()))
	if err != nil {
		t.Fatal(err)
	}
	if s := native.Render(got); s != "x+1<=1/2" {
		t.Errorf("got %s", s)
	}
}

func TestBackwardUnmapped(t *testing.T) {
	var warnings []error
	m := mir.Fn("Frobnicate", mir.Sym("x"), mir.FromInt(2))
	got, err := Backward(m,
		WithEvaluator(kernel.New()),
		WithWarnings(func(err error) { warnings = append(warnings, err) }))
	if err != nil {
		t.Fatal(err)
	}
	want := native.Apply("frobnicate", native.Identifier("x"), native.Int(2))
	if diff := cmp.Diff(native.Node(want), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrUnmappedOperator) {
		t.Fatalf("got warnings %v", warnings)
	}
	var ue *UnmappedOperatorError
	if !errors.As(warnings[0], &ue) || ue.Tag != "Frobnicate" || ue.Fallback != "frobnicate(x,2)" {
		t.Errorf("got %#v", warnings[0])
	}
}

func TestBackwardErrors(t *testing.T) {
	tests := []struct {
		name string
		in   *mir.Node
		err  error
	}{
		{"nil", nil, ErrUnsupportedVariant},
		{"empty number", &mir.Node{Type: mir.NumberType}, mir.ErrNoNumber},
		{"rational arity", mir.Fn("Rational", mir.FromInt(1)), ErrArity},
		{"complex arity", mir.Fn("Complex", mir.FromInt(1), mir.FromInt(2), mir.FromInt(3)), ErrArity},
		{"negate arity", mir.Fn("Negate", mir.Sym("x"), mir.Sym("y")), ErrArity},
		{"relation arity", mir.Fn("Equal", mir.Sym("x")), ErrArity},
		{"unmapped without evaluator", mir.Fn("Frobnicate"), ErrNoEvaluator},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Backward(tc.in, WithWarnings(nil))
			if !errors.Is(err, tc.err) {
				t.Errorf("got %v want %v", err, tc.err)
			}
		})
	}
}
