package syntax

import (
	"regexp"
	"strings"

	"github.com/expr-lang/expr/parser/utils"
)

var numberRE = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*)?$`)

// IsNumber reports whether s is a plain decimal numeral: an optional sign,
// digits and an optional fractional part.
func IsNumber(s string) bool {
	return numberRE.MatchString(s)
}

// IsIdentifier reports whether s is a single name in kernel syntax.
func IsIdentifier(s string) bool {
	return utils.IsValidIdentifier(s)
}

// SplitCall splits text of the shape name(args) into the name and the
// argument text. It reports false unless the parenthesis opened after the
// name is the one closing the text, so "f(x)+g(y)" is not a call.
func SplitCall(text string) (name, args string, ok bool) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '(')
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return "", "", false
	}
	name = strings.TrimSpace(text[:open])
	if !IsIdentifier(name) {
		return "", "", false
	}
	depth := 0
	for i, r := range text[open:] {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 && open+i != len(text)-1 {
				return "", "", false
			}
		}
		if depth < 0 {
			return "", "", false
		}
	}
	if depth != 0 {
		return "", "", false
	}
	return name, text[open+1 : len(text)-1], true
}

// SplitArgs splits argument text on commas outside of any (), [] or {}
// nesting. Each argument is trimmed. Blank text has no arguments.
func SplitArgs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var (
		res   []string
		depth int
		start int
	)
	for i, r := range text {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}
	return append(res, strings.TrimSpace(text[start:]))
}
