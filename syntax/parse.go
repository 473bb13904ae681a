package syntax

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/builtin"
	"github.com/expr-lang/expr/conf"
	"github.com/expr-lang/expr/parser"
)

var ErrParse = errors.New("parse error")

const bigPrefix = "__big"

// Tree is a parsed arithmetic expression. Integer literals too large for
// the parser are replaced by placeholder identifiers whose values are held
// in Big.
type Tree struct {
	Node ast.Node
	Big  map[string]*big.Int
}

// BigInt returns the exact value of a protected literal placeholder.
func (t *Tree) BigInt(name string) (*big.Int, bool) {
	v, ok := t.Big[name]
	return v, ok
}

// predicate builtins take closures as arguments in expr; listing them as
// overridden functions makes every call parse as a plain CallNode.
var callNames = []string{
	"all", "none", "any", "one", "filter", "map", "count", "sum", "find",
	"findIndex", "findLast", "findLastIndex", "groupBy", "sortBy", "reduce",
}

func newConfig() *conf.Config {
	cfg := conf.CreateNew()
	for _, name := range callNames {
		cfg.Functions[name] = &builtin.Function{Name: name}
	}
	for _, name := range builtin.Names {
		cfg.Functions[name] = &builtin.Function{Name: name}
	}
	return cfg
}

// Parse parses text as an expression with the usual precedence for
// + - * / % and right associative ^ (or **). Every call parses to an
// *ast.CallNode whose callee is an *ast.IdentifierNode.
func Parse(text string) (*Tree, error) {
	protected, bigs := protect(text)
	tree, err := parser.ParseWithConfig(protected, newConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, text, err)
	}
	return &Tree{Node: tree.Node, Big: bigs}, nil
}

// protect replaces decimal integer literals that do not fit in 64 bits
// with placeholder identifiers.
func protect(text string) (string, map[string]*big.Int) {
	var (
		b      strings.Builder
		bigs   map[string]*big.Int
		rs     = []rune(text)
		prefix = bigPrefix
	)
	// a prefix absent from text cannot start any identifier in it
	for strings.Contains(text, prefix) {
		prefix += "_"
	}
	for i := 0; i < len(rs); {
		r := rs[i]
		if r < '0' || r > '9' || (i > 0 && (isWordRune(rs[i-1]) || rs[i-1] == '.')) {
			b.WriteRune(r)
			i++
			continue
		}
		j := i
		for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
			j++
		}
		lit := string(rs[i:j])
		if j < len(rs) && (isWordRune(rs[j]) || rs[j] == '.') {
			b.WriteString(lit)
			i = j
			continue
		}
		if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
			b.WriteString(lit)
			i = j
			continue
		}
		v, _ := new(big.Int).SetString(lit, 10)
		if bigs == nil {
			bigs = map[string]*big.Int{}
		}
		name := prefix + strconv.Itoa(len(bigs))
		bigs[name] = v
		b.WriteString(name)
		i = j
	}
	return b.String(), bigs
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
