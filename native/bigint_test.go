package native

import (
	"errors"
	"math/big"
	"testing"
)

func TestBigRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"-1",
		"255",
		"256",
		"-9223372036854775808",
		"18446744073709551616",
		"-18446744073709551617",
		"340282366920938463463374607431768211457",
		"-123456789012345678901234567890123456789012345678901234567890",
	}
	for _, in := range tests {
		x, ok := new(big.Int).SetString(in, 10)
		if !ok {
			t.Fatalf("bad test input %q", in)
		}
		mag, sign := EncodeBig(x)
		got, err := DecodeBig(mag, sign)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got.Cmp(x) != 0 {
			t.Errorf("got %s want %s", got, x)
		}
		if sign != x.Sign() {
			t.Errorf("%s: sign %d", in, sign)
		}
	}
}

func TestBigZero(t *testing.T) {
	mag, sign := EncodeBig(new(big.Int))
	if len(mag) != 0 || sign != 0 {
		t.Fatalf("zero encoded as %v, %d", mag, sign)
	}
	x, err := DecodeBig(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if x.Sign() != 0 {
		t.Errorf("got %s want 0", x)
	}
	x, err = DecodeBig([]byte{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if x.Sign() != 0 {
		t.Errorf("got %s want 0", x)
	}
}

func TestBigMalformed(t *testing.T) {
	tests := []struct {
		mag  []byte
		sign int
	}{
		{[]byte{1}, 0},
		{[]byte{1}, 2},
		{[]byte{0, 0}, -1},
		{nil, 1},
	}
	for _, tc := range tests {
		_, err := DecodeBig(tc.mag, tc.sign)
		if !errors.Is(err, ErrBadBigInt) {
			t.Errorf("%v %d: got %v", tc.mag, tc.sign, err)
		}
	}
}

func TestInteger(t *testing.T) {
	if n := Integer(big.NewInt(42)); n != Int(42) {
		t.Errorf("got %#v", n)
	}
	if n := Integer(big.NewInt(-2147483648)); n != Int(-2147483648) {
		t.Errorf("got %#v", n)
	}
	n := Integer(big.NewInt(2147483648))
	b, ok := n.(BigInt)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if b.String() != "2147483648" {
		t.Errorf("got %s", b)
	}
}

func bigFromString(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big int " + s)
	}
	return x
}
