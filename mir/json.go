package mir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MathJSON wire form: numbers are JSON numbers or {"num": "..."} objects,
// symbols are JSON strings and functions are arrays whose first element is
// the head. Rationals are written as ["Rational", p, q].

func (y *Node) MarshalJSON() ([]byte, error) {
	v, err := ToAny(y)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := FromJSON(d)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}

func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return FromAny(v)
}

// ToAny returns y as a value encoding/json marshals to MathJSON.
func ToAny(y *Node) (any, error) {
	if y == nil {
		return nil, errors.New("nil node")
	}
	switch y.Type {
	case NumberType:
		return numberToAny(y)
	case SymbolType:
		if y.Name == "" {
			return nil, ErrBadSymbol
		}
		return y.Name, nil
	case FunctionType:
		if y.Head == "" {
			return nil, fmt.Errorf("%w: empty head", ErrBadFunction)
		}
		res := make([]any, 0, len(y.Args)+1)
		res = append(res, y.Head)
		for _, a := range y.Args {
			av, err := ToAny(a)
			if err != nil {
				return nil, err
			}
			res = append(res, av)
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown node type %d", y.Type)
}

func numberToAny(y *Node) (any, error) {
	switch {
	case y.Int64 != nil:
		return json.Number(strconv.FormatInt(*y.Int64, 10)), nil
	case y.Float64 != nil:
		return floatToAny(*y.Float64), nil
	case y.Big != nil:
		return bigToAny(y.Big), nil
	case y.Rat != nil:
		return []any{"Rational", bigToAny(y.Rat.Num()), bigToAny(y.Rat.Denom())}, nil
	}
	return nil, ErrNoNumber
}

func floatToAny(f float64) any {
	switch {
	case math.IsNaN(f):
		return map[string]any{"num": "NaN"}
	case math.IsInf(f, 1):
		return map[string]any{"num": "+Infinity"}
	case math.IsInf(f, -1):
		return map[string]any{"num": "-Infinity"}
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return json.Number(s)
}

func bigToAny(x *big.Int) any {
	if x.IsInt64() {
		return json.Number(strconv.FormatInt(x.Int64(), 10))
	}
	return map[string]any{"num": x.String()}
}

// FromAny builds a node from a decoded MathJSON value. Numbers may arrive
// as json.Number, float64 or int.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case json.Number:
		return parseNumber(string(x))
	case float64:
		return FromFloat(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case string:
		if x == "" {
			return nil, ErrBadSymbol
		}
		return Sym(x), nil
	case []any:
		if len(x) == 0 {
			return nil, fmt.Errorf("%w: empty array", ErrBadFunction)
		}
		head, ok := x[0].(string)
		if !ok || head == "" {
			return nil, fmt.Errorf("%w: head %v is not a name", ErrBadFunction, x[0])
		}
		args := make([]*Node, 0, len(x)-1)
		for _, a := range x[1:] {
			an, err := FromAny(a)
			if err != nil {
				return nil, err
			}
			args = append(args, an)
		}
		return Fn(head, args...), nil
	case map[string]any:
		return objectFromAny(x)
	}
	return nil, fmt.Errorf("%w: unexpected %T", ErrParse, v)
}

func objectFromAny(m map[string]any) (*Node, error) {
	if v, ok := m["num"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: num must be a string", ErrParse)
		}
		return parseNumber(s)
	}
	if v, ok := m["sym"]; ok {
		return FromAny(v)
	}
	if v, ok := m["fn"]; ok {
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: fn must be an array", ErrParse)
		}
		return FromAny(arr)
	}
	return nil, fmt.Errorf("%w: object without num, sym or fn", ErrParse)
}

func parseNumber(s string) (*Node, error) {
	switch s {
	case "NaN":
		return FromFloat(math.NaN()), nil
	case "+Infinity", "Infinity":
		return FromFloat(math.Inf(1)), nil
	case "-Infinity":
		return FromFloat(math.Inf(-1)), nil
	}
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return FromFloat(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return FromInt(i), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: bad number %q", ErrParse, s)
	}
	return &Node{Type: NumberType, Big: x}, nil
}
