// Package optable holds the static lookup tables between kernel operator
// and constant spellings and interchange tags.
//
// The two operator directions are separate tables and are not inverses:
// several kernel spellings collapse onto one tag ("log" and "ln" both give
// Ln), and some tags reverse to a structural node instead of an operator.
package optable

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Interchange tags with structural or rewrite meaning.
const (
	Rational = "Rational"
	Complex  = "Complex"
	List     = "List"
	Negate   = "Negate"
	Sqrt     = "Sqrt"
	Power    = "Power"
	Exp      = "Exp"

	Add      = "Add"
	Subtract = "Subtract"
	Multiply = "Multiply"
	Divide   = "Divide"

	Equal        = "Equal"
	NotEqual     = "NotEqual"
	Less         = "Less"
	LessEqual    = "LessEqual"
	Greater      = "Greater"
	GreaterEqual = "GreaterEqual"
)

// Canonical constant symbol names.
const (
	Pi            = "Pi"
	ExponentialE  = "ExponentialE"
	ImaginaryUnit = "ImaginaryUnit"
)

var toTag = map[string]string{
	"+":   Add,
	"-":   Subtract,
	"*":   Multiply,
	"/":   Divide,
	"^":   Power,
	"%":   "Mod",
	"neg": Negate,

	"sqrt":  Sqrt,
	"exp":   Exp,
	"ln":    "Ln",
	"log":   "Ln",
	"log10": "Lg",

	"sin":   "Sin",
	"cos":   "Cos",
	"tan":   "Tan",
	"sec":   "Sec",
	"csc":   "Csc",
	"cot":   "Cot",
	"asin":  "Arcsin",
	"acos":  "Arccos",
	"atan":  "Arctan",
	"sinh":  "Sinh",
	"cosh":  "Cosh",
	"tanh":  "Tanh",
	"asinh": "Arsinh",
	"acosh": "Arcosh",
	"atanh": "Artanh",

	"abs":       "Abs",
	"sign":      "Sign",
	"floor":     "Floor",
	"ceil":      "Ceil",
	"round":     "Round",
	"max":       "Max",
	"min":       "Min",
	"factorial": "Factorial",
	"gcd":       "GCD",
	"lcm":       "LCM",

	"re":   "Real",
	"im":   "Imaginary",
	"conj": "Conjugate",
	"arg":  "Arg",

	"diff":      "D",
	"integrate": "Integrate",
	"sum":       "Sum",
	"limit":     "Limit",
	"det":       "Determinant",
	"transpose": "Transpose",

	"==": Equal,
	"!=": NotEqual,
	"<":  Less,
	"<=": LessEqual,
	">":  Greater,
	">=": GreaterEqual,
}

// Tag returns the interchange tag for a kernel operator name.
func Tag(op string) (string, bool) {
	tag, ok := toTag[op]
	return tag, ok
}

// CallTag returns the tag for a call of op with n arguments. The
// two-argument log carries its base and is Log; everything else is Tag.
func CallTag(op string, n int) (string, bool) {
	if op == "log" && n == 2 {
		return "Log", true
	}
	return Tag(op)
}

// FallbackTag derives a tag for an operator missing from the table by
// upper-casing its first letter. The result is a best guess: the reverse
// table will usually not know it.
func FallbackTag(op string) string {
	r, n := utf8.DecodeRuneInString(op)
	if r == utf8.RuneError {
		return op
	}
	return string(unicode.ToUpper(r)) + op[n:]
}

// FallbackOp derives a kernel command name from an unknown tag.
func FallbackOp(tag string) string {
	return strings.ToLower(tag)
}
