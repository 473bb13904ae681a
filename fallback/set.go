package fallback

import "strings"

// Set holds the names of functions kept as symbolic calls.
type Set map[string]bool

func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = true
	}
	return s
}

// ParseSet reads a comma separated list of names.
func ParseSet(list string) Set {
	s := Set{}
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			s[name] = true
		}
	}
	return s
}

// Default returns the square root, exponential, logarithm, trigonometric,
// hyperbolic and absolute value functions.
func Default() Set {
	return NewSet(
		"sqrt", "exp", "log", "ln",
		"sin", "cos", "tan", "asin", "acos", "atan",
		"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
		"abs",
	)
}
