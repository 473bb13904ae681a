package mir

import (
	"math/big"
	"strings"
)

// Node is an interchange tree node. Nodes are not modified once built;
// constructors copy big values they are given.
type Node struct {
	Type Type

	Int64   *int64
	Float64 *float64
	Big     *big.Int
	Rat     *big.Rat

	Name string

	Head string
	Args []*Node
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBig(v *big.Int) *Node {
	return &Node{
		Type: NumberType,
		Big:  new(big.Int).Set(v),
	}
}

func FromRat(v *big.Rat) *Node {
	return &Node{
		Type: NumberType,
		Rat:  new(big.Rat).Set(v),
	}
}

func Sym(name string) *Node {
	return &Node{
		Type: SymbolType,
		Name: name,
	}
}

func Fn(head string, args ...*Node) *Node {
	if args == nil {
		args = []*Node{}
	}
	return &Node{
		Type: FunctionType,
		Head: head,
		Args: args,
	}
}

func (y *Node) Clone() *Node {
	res := &Node{Type: y.Type, Name: y.Name, Head: y.Head}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Big != nil {
		res.Big = new(big.Int).Set(y.Big)
	}
	if y.Rat != nil {
		res.Rat = new(big.Rat).Set(y.Rat)
	}
	if y.Args != nil {
		res.Args = make([]*Node, len(y.Args))
		for i, a := range y.Args {
			res.Args[i] = a.Clone()
		}
	}
	return res
}

// IsSymbol reports whether y is the symbol name.
func (y *Node) IsSymbol(name string) bool {
	return y != nil && y.Type == SymbolType && y.Name == name
}

// IsFunction reports whether y is a function node with the given head.
func (y *Node) IsFunction(head string) bool {
	return y != nil && y.Type == FunctionType && y.Head == head
}

// Exact returns the exact rational value of an integer or rational number
// node. Floats and non-numbers report false.
func (y *Node) Exact() (*big.Rat, bool) {
	if y == nil || y.Type != NumberType {
		return nil, false
	}
	switch {
	case y.Int64 != nil:
		return new(big.Rat).SetInt64(*y.Int64), true
	case y.Big != nil:
		return new(big.Rat).SetInt(y.Big), true
	case y.Rat != nil:
		return new(big.Rat).Set(y.Rat), true
	}
	return nil, false
}

// Integer returns the value of an integer number node.
func (y *Node) Integer() (*big.Int, bool) {
	if y == nil || y.Type != NumberType {
		return nil, false
	}
	switch {
	case y.Int64 != nil:
		return big.NewInt(*y.Int64), true
	case y.Big != nil:
		return new(big.Int).Set(y.Big), true
	case y.Rat != nil && y.Rat.IsInt():
		return new(big.Int).Set(y.Rat.Num()), true
	}
	return nil, false
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Args {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// String returns the compact MathJSON form of y.
func (y *Node) String() string {
	d, err := y.MarshalJSON()
	if err != nil {
		return "<" + strings.ToLower(y.Type.String()) + ": " + err.Error() + ">"
	}
	return string(d)
}
