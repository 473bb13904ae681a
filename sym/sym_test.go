package sym

import (
	"math/big"
	"testing"
)

func TestString(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	tests := []struct {
		in  Expr
		out string
	}{
		{Int(-3), "-3"},
		{NewRational(big.NewRat(-1, 2)), "-1/2"},
		{Float(2), "2.0"},
		{Pi, "pi"},
		{NewAdd(false, x, Int(1)), "x + 1"},
		{NewAdd(false, x, Int(-1)), "x - 1"},
		{NewAdd(false, x, Neg(false, y)), "x - y"},
		{NewAdd(false, x, NewMul(false, Int(-2), y)), "x - 2*y"},
		{NewAdd(false, x, NewAdd(false, y, Int(1))), "x + (y + 1)"},
		{NewMul(false, Int(2), x), "2*x"},
		{NewMul(false, x, Int(-2)), "x*(-2)"},
		{NewMul(false, NewAdd(false, x, Int(1)), y), "(x + 1)*y"},
		{Neg(false, x), "-x"},
		{Neg(false, NewAdd(false, x, y)), "-(x + y)"},
		{NewPow(false, x, Int(2)), "x**2"},
		{NewPow(false, Int(-2), x), "(-2)**x"},
		{NewPow(false, x, Int(-1)), "x**(-1)"},
		{NewPow(false, NewPow(false, x, y), Int(2)), "(x**y)**2"},
		{NewPow(false, x, NewPow(false, y, Int(2))), "x**y**2"},
		{Sqrt(false, NewAdd(false, x, Int(1))), "sqrt(x + 1)"},
		{NewFunction("sin", x), "sin(x)"},
		{NewFunction("atan2", y, x), "atan2(y, x)"},
		{NewRelational("==", x, Int(1)), "Eq(x, 1)"},
		{NewRelational("<=", x, Int(1)), "x <= 1"},
		{NewList(Int(1), x), "[1, x]"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.out {
			t.Errorf("got %q want %q", got, tc.out)
		}
	}
}

func TestEvaluate(t *testing.T) {
	x, y := NewSymbol("x"), NewSymbol("y")
	tests := []struct {
		name string
		in   Expr
		out  Expr
	}{
		{"fold sum", NewAdd(true, Int(1), x, Int(2)), &Add{Args: []Expr{x, Int(3)}}},
		{"flatten sum", NewAdd(true, NewAdd(true, x, y), Int(1)), &Add{Args: []Expr{x, y, Int(1)}}},
		{"drop zero", NewAdd(true, x, Int(1), Int(-1)), x},
		{"exact fractions", NewAdd(true, NewRational(big.NewRat(1, 2)), NewRational(big.NewRat(1, 3))), NewRational(big.NewRat(5, 6))},
		{"float contaminates", NewAdd(true, Int(1), Float(0.5)), Float(1.5)},
		{"fold product", NewMul(true, Int(2), x, Int(3)), &Mul{Args: []Expr{Int(6), x}}},
		{"drop one", NewMul(true, Int(1), x), x},
		{"zero product", NewMul(true, Int(0), x), Int(0)},
		{"empty product", NewMul(true), Int(1)},
		{"pow zero", NewPow(true, x, Int(0)), Int(1)},
		{"pow one", NewPow(true, x, Int(1)), x},
		{"exact pow", NewPow(true, NewRational(big.NewRat(2, 3)), Int(-2)), NewRational(big.NewRat(9, 4))},
		{"float pow", NewPow(true, Float(4), NewRational(big.NewRat(1, 2))), Float(2)},
		{"sqrt stays", Sqrt(true, Int(2)), &Pow{Base: Int(2), Exp: Half()}},
		{"kept verbatim", NewAdd(false, Int(1), Int(2)), &Add{Args: []Expr{Int(1), Int(2)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !Equal(tc.in, tc.out) {
				t.Errorf("got %s want %s", tc.in, tc.out)
			}
		})
	}
}

func TestEqualSymbols(t *testing.T) {
	if !Equal(NewSymbol("x"), NewSymbol("x")) {
		t.Errorf("same names should be equal")
	}
	if Equal(NewSymbol("x"), NewFunction("x")) {
		t.Errorf("symbol and function should differ")
	}
	if Equal(Int(1), Float(1)) {
		t.Errorf("integer and float should differ")
	}
}

func TestNegativeTermDoesNotMutate(t *testing.T) {
	r := NewRational(big.NewRat(-1, 2))
	s := NewAdd(false, NewSymbol("x"), r).String()
	if s != "x - 1/2" {
		t.Errorf("got %q", s)
	}
	if r.String() != "-1/2" {
		t.Errorf("term mutated to %s", r)
	}
}
