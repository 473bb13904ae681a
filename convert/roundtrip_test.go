package convert

import (
	"math/big"
	"testing"

	"github.com/signadot/symx/kernel"
	"github.com/signadot/symx/native"
)

func TestRoundTrip(t *testing.T) {
	k := kernel.New()
	c := New(WithEvaluator(k))
	for _, text := range []string{
		"x+1",
		"x+y+1",
		"x-(y-1)",
		"2*x^3",
		"(x+1)*y",
		"1/2",
		"-1/2+x",
		"-x",
		"-(x+y)",
		"x/y",
		"x%3",
		"sin(x)*cos(y)",
		"max(x,y,1)",
		"exp(x)-ln(x)",
		"abs(x-1)",
		"pi*x",
		"123456789012345678901234567890*x",
		"[1,x,[y]]",
		"x==1",
		"x+1!=y",
		"factorial(n)/gcd(a,b)",
		"sum([1,2,3])",
		"log(x,10)",
		"det([[1,2],[3,4]])",
	} {
		n, err := k.Eval(text)
		if err != nil {
			t.Errorf("%s: %v", text, err)
			continue
		}
		m, err := c.Forward(n)
		if err != nil {
			t.Errorf("%s: forward: %v", text, err)
			continue
		}
		back, err := c.Backward(m)
		if err != nil {
			t.Errorf("%s: backward: %v", text, err)
			continue
		}
		if got := native.Render(back); got != native.Render(n) {
			t.Errorf("%s: got %s (via %s)", text, got, m)
		}
	}
}

func TestBigIntegerExactness(t *testing.T) {
	for _, s := range []string{
		"0",
		"18446744073709551617",
		"-18446744073709551617",
		"-340282366920938463463374607431768211456",
	} {
		v, _ := new(big.Int).SetString(s, 10)
		mag, sign := native.EncodeBig(v)
		if v.Sign() == 0 && (len(mag) != 0 || sign != 0) {
			t.Errorf("zero encoded as %v %d", mag, sign)
		}
		dec, err := native.DecodeBig(mag, sign)
		if err != nil || dec.Cmp(v) != 0 {
			t.Errorf("%s: got %v %v", s, dec, err)
		}
		m, err := Forward(native.NewBigInt(v))
		if err != nil {
			t.Fatal(err)
		}
		back, err := Backward(m)
		if err != nil {
			t.Fatal(err)
		}
		if native.Render(back) != s {
			t.Errorf("%s: got %s", s, back)
		}
	}
}
