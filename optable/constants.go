package optable

var toCanonical = map[string]string{
	"pi":          Pi,
	"π":           Pi,
	"e":           ExponentialE,
	"i":           ImaginaryUnit,
	"inf":         "PositiveInfinity",
	"infinity":    "PositiveInfinity",
	"euler_gamma": "EulerGamma",
	"undef":       "Undefined",
	"true":        "True",
	"false":       "False",
}

// ExponentialE and ImaginaryUnit are absent: the kernel has no atomic
// identifier for them.
var fromCanonical = map[string]string{
	Pi:                 "pi",
	"PositiveInfinity": "inf",
	"EulerGamma":       "euler_gamma",
	"Undefined":        "undef",
	"True":             "true",
	"False":            "false",
}

// ConstantName returns the canonical symbol for a kernel identifier that
// names a constant.
func ConstantName(identifier string) (string, bool) {
	name, ok := toCanonical[identifier]
	return name, ok
}

// NativeConstant returns the kernel identifier for a canonical constant
// symbol.
func NativeConstant(canonical string) (string, bool) {
	name, ok := fromCanonical[canonical]
	return name, ok
}
