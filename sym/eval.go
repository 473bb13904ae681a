package sym

import (
	"math"
	"math/big"
)

// NewAdd builds a sum. With evaluate, nested sums are flattened, numeric
// terms folded into one trailing term and zero dropped.
func NewAdd(evaluate bool, args ...Expr) Expr {
	if !evaluate {
		return &Add{Args: args}
	}
	var (
		terms []Expr
		acc   = new(numAcc)
	)
	for _, a := range flatten(args, func(e Expr) []Expr {
		if x, ok := e.(*Add); ok {
			return x.Args
		}
		return nil
	}) {
		if IsNumber(a) {
			acc.add(a)
			continue
		}
		terms = append(terms, a)
	}
	if n := acc.result(); n != nil && !isZeroNumber(n) {
		terms = append(terms, n)
	} else if n != nil && len(terms) == 0 {
		return n
	}
	switch len(terms) {
	case 0:
		return Int(0)
	case 1:
		return terms[0]
	}
	return &Add{Args: terms}
}

// NewMul builds a product. With evaluate, nested products are flattened,
// numeric factors folded into one leading coefficient, a coefficient of 1
// dropped and an exact zero coefficient absorbs the product.
func NewMul(evaluate bool, args ...Expr) Expr {
	if !evaluate {
		return &Mul{Args: args}
	}
	var (
		factors []Expr
		acc     = &numAcc{mul: true}
	)
	for _, a := range flatten(args, func(e Expr) []Expr {
		if x, ok := e.(*Mul); ok {
			return x.Args
		}
		return nil
	}) {
		if IsNumber(a) {
			acc.add(a)
			continue
		}
		factors = append(factors, a)
	}
	n := acc.result()
	if n != nil {
		if r, ok := Exact(n); ok && r.Sign() == 0 {
			return n
		}
		if !isOne(n) || len(factors) == 0 {
			factors = append([]Expr{n}, factors...)
		}
	}
	switch len(factors) {
	case 0:
		return Int(1)
	case 1:
		return factors[0]
	}
	return &Mul{Args: factors}
}

// NewPow builds base**exp. With evaluate, x**0 is 1, x**1 is x, 1**x is 1
// and numeric powers are folded: exactly for an exact base with an integer
// exponent, in floating point when either side is a Float.
func NewPow(evaluate bool, base, exp Expr) Expr {
	if !evaluate {
		return &Pow{Base: base, Exp: exp}
	}
	if r, ok := Exact(exp); ok {
		switch {
		case r.Sign() == 0:
			return Int(1)
		case r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1:
			return base
		}
	}
	if isOne(base) {
		return base
	}
	if br, ok := Exact(base); ok {
		if er, ok := Exact(exp); ok && er.IsInt() {
			if v, ok := ratPow(br, er.Num()); ok {
				return NewRational(v)
			}
		}
	}
	if IsNumber(base) && IsNumber(exp) {
		_, bf := base.(Float)
		_, ef := exp.(Float)
		if bf || ef {
			return Float(math.Pow(toFloat(base), toFloat(exp)))
		}
	}
	return &Pow{Base: base, Exp: exp}
}

const maxExactExponent = 1 << 16

func ratPow(base *big.Rat, exp *big.Int) (*big.Rat, bool) {
	if !exp.IsInt64() || exp.Int64() > maxExactExponent || exp.Int64() < -maxExactExponent {
		return nil, false
	}
	e := exp.Int64()
	if e < 0 {
		if base.Sign() == 0 {
			return nil, false
		}
		base = new(big.Rat).Inv(base)
		e = -e
	}
	n := new(big.Int).Exp(base.Num(), big.NewInt(e), nil)
	d := new(big.Int).Exp(base.Denom(), big.NewInt(e), nil)
	return new(big.Rat).SetFrac(n, d), true
}

func flatten(args []Expr, inner func(Expr) []Expr) []Expr {
	var res []Expr
	for _, a := range args {
		if sub := inner(a); sub != nil {
			res = append(res, flatten(sub, inner)...)
			continue
		}
		res = append(res, a)
	}
	return res
}

// numAcc folds numeric terms. It stays exact until it meets a Float.
type numAcc struct {
	mul   bool
	seen  bool
	float bool
	r     *big.Rat
	f     float64
}

func (a *numAcc) add(e Expr) {
	if !a.seen {
		a.seen = true
		if a.mul {
			a.r, a.f = big.NewRat(1, 1), 1
		} else {
			a.r, a.f = new(big.Rat), 0
		}
	}
	if x, ok := e.(Float); ok && !a.float {
		a.float = true
		a.f, _ = a.r.Float64()
		a.combineFloat(float64(x))
		return
	}
	if a.float {
		a.combineFloat(toFloat(e))
		return
	}
	r, _ := Exact(e)
	if a.mul {
		a.r.Mul(a.r, r)
	} else {
		a.r.Add(a.r, r)
	}
}

func (a *numAcc) combineFloat(f float64) {
	if a.mul {
		a.f *= f
	} else {
		a.f += f
	}
}

func (a *numAcc) result() Expr {
	switch {
	case !a.seen:
		return nil
	case a.float:
		return Float(a.f)
	}
	return NewRational(a.r)
}

func isZeroNumber(e Expr) bool {
	if r, ok := Exact(e); ok {
		return r.Sign() == 0
	}
	return false
}

func isOne(e Expr) bool {
	x, ok := e.(Integer)
	return ok && x.Value.IsInt64() && x.Value.Int64() == 1
}
