package mir

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func TestMarshalMathJSON(t *testing.T) {
	big20, _ := new(big.Int).SetString("100000000000000000000", 10)
	tests := []struct {
		in  *Node
		out string
	}{
		{FromInt(3), `3`},
		{FromFloat(2), `2.0`},
		{FromFloat(0.25), `0.25`},
		{FromFloat(math.Inf(-1)), `{"num":"-Infinity"}`},
		{FromBig(big20), `{"num":"100000000000000000000"}`},
		{FromBig(big.NewInt(5)), `5`},
		{FromRat(big.NewRat(1, 2)), `["Rational",1,2]`},
		{Sym("Pi"), `"Pi"`},
		{Fn("Add", Sym("x"), FromInt(1)), `["Add","x",1]`},
		{Fn("Sqrt", Fn("Negate", Sym("y"))), `["Sqrt",["Negate","y"]]`},
		{Fn("List"), `["List"]`},
	}
	for _, tc := range tests {
		d, err := json.Marshal(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.out, err)
			continue
		}
		if !jsonpatch.Equal(d, []byte(tc.out)) {
			t.Errorf("got %s want %s", d, tc.out)
		}
	}
}

func TestUnmarshalMathJSON(t *testing.T) {
	big20, _ := new(big.Int).SetString("-100000000000000000000", 10)
	tests := []struct {
		in  string
		out *Node
	}{
		{`3`, FromInt(3)},
		{`-3`, FromInt(-3)},
		{`2.5`, FromFloat(2.5)},
		{`1e3`, FromFloat(1000)},
		{`-100000000000000000000`, FromBig(big20)},
		{`{"num":"-100000000000000000000"}`, FromBig(big20)},
		{`{"num":"NaN"}`, FromFloat(math.NaN())},
		{`"x"`, Sym("x")},
		{`{"sym":"x"}`, Sym("x")},
		{`["Power","x",2]`, Fn("Power", Sym("x"), FromInt(2))},
		{`{"fn":["Sin","x"]}`, Fn("Sin", Sym("x"))},
		{`["Rational",1,2]`, Fn("Rational", FromInt(1), FromInt(2))},
	}
	for _, tc := range tests {
		got, err := FromJSON([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got.Float64 != nil && math.IsNaN(*got.Float64) && math.IsNaN(*tc.out.Float64) {
			continue
		}
		if !Equal(got, tc.out) {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.out)
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`[]`, ErrBadFunction},
		{`[1, 2]`, ErrBadFunction},
		{`""`, ErrBadSymbol},
		{`{"str":"hello"}`, ErrParse},
		{`{"num":"1.2.3"}`, ErrParse},
		{`true`, ErrParse},
		{`[`, ErrParse},
		{`"x" ["Add",1,2]`, ErrParse},
		{"[\"Add\",1,2]\n3", ErrParse},
	}
	for _, tc := range tests {
		_, err := FromJSON([]byte(tc.in))
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: got %v want %v", tc.in, err, tc.err)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `["Equal",["Add",["Multiply",2,"x"],{"num":"123456789012345678901234567890"}],["Sqrt",["Rational",1,3]]]`
	n, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	var n2 Node
	if err := json.Unmarshal([]byte(n.String()), &n2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(n.String(), n2.String()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	if !jsonpatch.Equal([]byte(in), []byte(n2.String())) {
		t.Errorf("got %s want %s", n2.String(), in)
	}
}
