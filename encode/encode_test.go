package encode

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/symx/format"
	"github.com/signadot/symx/mir"
)

func sample() *mir.Node {
	return mir.Fn("Add", mir.Fn("Sqrt", mir.Sym("x")), mir.FromInt(1))
}

func TestEncodeJSON(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	tests := []struct {
		in   *mir.Node
		opts []EncodeOption
		out  string
	}{
		{sample(), nil, `["Add",["Sqrt","x"],1]`},
		{mir.Fn("Multiply", mir.FromBig(huge), mir.Sym("y")), nil,
			`["Multiply",{"num":"123456789012345678901234567890"},"y"]`},
		{mir.FromRat(big.NewRat(-1, 3)), nil, `["Rational",-1,3]`},
		{mir.Fn("Power", mir.Sym("x"), mir.FromInt(2)), []EncodeOption{EncodeIndent(2)},
			`["Power", "x", 2]`},
		{sample(), []EncodeOption{EncodeIndent(2)},
			"[\n  \"Add\",\n  [\"Sqrt\", \"x\"],\n  1\n]"},
	}
	for _, tc := range tests {
		got := MustString(tc.in, tc.opts...)
		if diff := cmp.Diff(tc.out, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
		if !jsonpatch.Equal([]byte(got), []byte(tc.in.String())) {
			t.Errorf("%s does not decode to the same value", got)
		}
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		in  *mir.Node
		out string
	}{
		{sample(), "Add(Sqrt(x), 1)"},
		{mir.FromFloat(2), "2.0"},
		{mir.FromRat(big.NewRat(1, 2)), "Rational(1, 2)"},
		{mir.Fn("List"), "List()"},
		{mir.Fn("Power", mir.Sym("x"), mir.FromRat(big.NewRat(1, 3))), "Power(x, Rational(1, 3))"},
		{mir.Fn("Negate", mir.Sym("PositiveInfinity")), "Negate(PositiveInfinity)"},
	}
	for _, tc := range tests {
		got := MustString(tc.in, EncodeFormat(format.TextFormat))
		if got != tc.out {
			t.Errorf("got %q want %q", got, tc.out)
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	n := mir.Fn("Equal", sample(), mir.Fn("Rational", mir.FromInt(1), mir.FromInt(2)))
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	d, err := yaml.YAMLToJSON(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !jsonpatch.Equal(d, []byte(n.String())) {
		t.Errorf("got %s want %s", d, n)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := NewColors()
	colors.Map = map[Colorable]func(string, ...any) string{
		{Type: mir.FunctionType, Attr: HeadColor}: func(s string, _ ...any) string {
			return "<" + s + ">"
		},
	}
	got := MustString(sample(), EncodeFormat(format.TextFormat), EncodeColors(colors))
	if got != "<Add>(<Sqrt>(x), 1)" {
		t.Errorf("got %q", got)
	}
	plain := MustString(sample(), EncodeColors(&Colors{Default: colorDefault}))
	if strings.ContainsRune(plain, '\x1b') {
		t.Errorf("default colors escaped %q", plain)
	}
}

func TestEncodeErrors(t *testing.T) {
	bad := []*mir.Node{
		nil,
		{Type: mir.NumberType},
		{Type: mir.SymbolType},
		{Type: mir.FunctionType},
	}
	for _, n := range bad {
		if err := Encode(n, bytes.NewBuffer(nil)); err == nil {
			t.Errorf("%v: expected error", n)
		}
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Errorf("format not recovered from options")
	}
}
