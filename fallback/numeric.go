package fallback

import (
	"math/big"

	"github.com/signadot/symx/sym"
)

const maxFactorial = 10000

// numeric evaluates the exact integer functions when every argument is an
// exact number.
func numeric(name string, args []sym.Expr) (sym.Expr, bool) {
	vals := make([]*big.Rat, len(args))
	for i, a := range args {
		r, ok := sym.Exact(a)
		if !ok {
			return nil, false
		}
		vals[i] = r
	}
	switch name {
	case "factorial":
		if len(vals) != 1 || !vals[0].IsInt() {
			return nil, false
		}
		n := vals[0].Num()
		if n.Sign() < 0 || n.Cmp(big.NewInt(maxFactorial)) > 0 {
			return nil, false
		}
		return sym.NewInteger(new(big.Int).MulRange(1, n.Int64())), true
	case "floor", "ceil":
		if len(vals) != 1 {
			return nil, false
		}
		return sym.NewInteger(round(vals[0], name == "ceil")), true
	case "max", "min":
		if len(vals) == 0 {
			return nil, false
		}
		best := vals[0]
		for _, v := range vals[1:] {
			c := v.Cmp(best)
			if (name == "max" && c > 0) || (name == "min" && c < 0) {
				best = v
			}
		}
		return sym.NewRational(best), true
	case "gcd", "lcm":
		if len(vals) == 0 {
			return nil, false
		}
		acc := new(big.Int)
		for i, v := range vals {
			if !v.IsInt() {
				return nil, false
			}
			n := new(big.Int).Abs(v.Num())
			switch {
			case i == 0:
				acc.Set(n)
			case name == "gcd":
				acc.GCD(nil, nil, acc, n)
			default:
				acc = lcm(acc, n)
			}
		}
		return sym.NewInteger(acc), true
	}
	return nil, false
}

func round(r *big.Rat, up bool) *big.Int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if up && m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

func lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := new(big.Int).GCD(nil, nil, a, b)
	res := new(big.Int).Quo(a, g)
	return res.Mul(res, b)
}

// mod folds the remainder of two exact integers. The result takes the sign
// of the divisor.
func mod(l, r sym.Expr) sym.Expr {
	a, aok := sym.Exact(l)
	b, bok := sym.Exact(r)
	if !aok || !bok || !a.IsInt() || !b.IsInt() || b.Sign() == 0 {
		return sym.NewFunction("Mod", l, r)
	}
	m := new(big.Int).Mod(a.Num(), b.Num())
	if m.Sign() != 0 && b.Sign() < 0 {
		m.Add(m, b.Num())
	}
	return sym.NewInteger(m)
}
