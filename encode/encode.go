package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/symx/format"
	"github.com/signadot/symx/mir"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(mir.Type, ColorAttr, string) string
}

// Encode writes node to w in the selected format followed by a newline.
func Encode(node *mir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ mir.Type, _ ColorAttr, s string) string { return s }
	}
	if node == nil {
		return errors.New("nil node")
	}
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	case format.TextFormat:
		err = encodeText(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeYAML(node *mir.Node, w io.Writer) error {
	v, err := mir.ToAny(node)
	if err != nil {
		return err
	}
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(y, []byte("\n")) {
		y = append(y, '\n')
	}
	_, err = w.Write(y)
	return err
}

func encodeJSON(node *mir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case mir.NumberType:
		if node.Rat != nil {
			return encodeJSON(ratFunction(node), w, es)
		}
		v, err := mir.ToAny(node)
		if err != nil {
			return err
		}
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return writeString(w, es.Color(mir.NumberType, ValueColor, string(d)))
	case mir.SymbolType:
		if node.Name == "" {
			return mir.ErrBadSymbol
		}
		return writeString(w, es.Color(mir.SymbolType, ValueColor, strconv.Quote(node.Name)))
	case mir.FunctionType:
		if node.Head == "" {
			return fmt.Errorf("%w: empty head", mir.ErrBadFunction)
		}
		broken := es.indent > 0 && !allLeaves(node.Args)
		sep := func(s string) error {
			return writeString(w, es.Color(mir.FunctionType, SepColor, s))
		}
		if err := sep("["); err != nil {
			return err
		}
		es.depth++
		if broken {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeString(w, es.Color(mir.FunctionType, HeadColor, strconv.Quote(node.Head))); err != nil {
			return err
		}
		for _, a := range node.Args {
			if err := sep(","); err != nil {
				return err
			}
			switch {
			case broken:
				if err := writeNL(w, es); err != nil {
					return err
				}
			case es.indent > 0:
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
			if err := encodeJSON(a, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if broken {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		return sep("]")
	}
	return fmt.Errorf("unknown node type %d", node.Type)
}

func encodeText(node *mir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) error {
		return writeString(w, es.Color(mir.FunctionType, SepColor, s))
	}
	// number of arguments written so far in each open call
	var open []int
	return node.Visit(func(y *mir.Node, isPost bool) (bool, error) {
		if isPost {
			if y.Type != mir.FunctionType {
				return false, nil
			}
			open = open[:len(open)-1]
			return false, sep(")")
		}
		if n := len(open); n > 0 {
			if open[n-1] > 0 {
				if err := sep(", "); err != nil {
					return false, err
				}
			}
			open[n-1]++
		}
		switch y.Type {
		case mir.NumberType:
			if y.Rat != nil {
				return false, ratText(y, w, es)
			}
			s, err := numberText(y)
			if err != nil {
				return false, err
			}
			return false, writeString(w, es.Color(mir.NumberType, ValueColor, s))
		case mir.SymbolType:
			if y.Name == "" {
				return false, mir.ErrBadSymbol
			}
			return false, writeString(w, es.Color(mir.SymbolType, ValueColor, y.Name))
		case mir.FunctionType:
			if y.Head == "" {
				return false, fmt.Errorf("%w: empty head", mir.ErrBadFunction)
			}
			if err := writeString(w, es.Color(mir.FunctionType, HeadColor, y.Head)); err != nil {
				return false, err
			}
			open = append(open, 0)
			return true, sep("(")
		}
		return false, fmt.Errorf("unknown node type %d", y.Type)
	})
}

func ratText(y *mir.Node, w io.Writer, es *EncState) error {
	f := ratFunction(y)
	parts := []string{
		es.Color(mir.FunctionType, HeadColor, f.Head),
		es.Color(mir.FunctionType, SepColor, "("),
		es.Color(mir.NumberType, ValueColor, f.Args[0].Big.String()),
		es.Color(mir.FunctionType, SepColor, ", "),
		es.Color(mir.NumberType, ValueColor, f.Args[1].Big.String()),
		es.Color(mir.FunctionType, SepColor, ")"),
	}
	return writeString(w, strings.Join(parts, ""))
}

func numberText(node *mir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Big != nil:
		return node.Big.String(), nil
	case node.Float64 != nil:
		f := *node.Float64
		switch {
		case math.IsNaN(f):
			return "NaN", nil
		case math.IsInf(f, 1):
			return "+Infinity", nil
		case math.IsInf(f, -1):
			return "-Infinity", nil
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s, nil
	}
	return "", mir.ErrNoNumber
}

func ratFunction(node *mir.Node) *mir.Node {
	return mir.Fn("Rational", mir.FromBig(node.Rat.Num()), mir.FromBig(node.Rat.Denom()))
}

func allLeaves(args []*mir.Node) bool {
	for _, a := range args {
		if !a.Type.IsLeaf() {
			return false
		}
	}
	return true
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
