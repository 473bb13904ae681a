package mir

import "fmt"

type Type int

const (
	NumberType Type = iota
	SymbolType
	FunctionType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NumberType:   "Number",
		SymbolType:   "Symbol",
		FunctionType: "Function",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Number":   NumberType,
		"Symbol":   SymbolType,
		"Function": FunctionType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NumberType,
		SymbolType,
		FunctionType,
	}
}

func (t Type) IsLeaf() bool {
	return t != FunctionType
}
