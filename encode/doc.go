// Package encode writes interchange trees as MathJSON, YAML or functional
// text notation.
//
// # Usage
//
//	node := mir.Fn("Add", mir.Fn("Sqrt", mir.Sym("x")), mir.FromInt(1))
//
//	// ["Add",["Sqrt","x"],1]
//	err := encode.Encode(node, os.Stdout)
//
//	// Add(Sqrt(x), 1)
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.TextFormat))
//
//	// colored, indented JSON for a terminal
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeIndent(2), encode.EncodeColors(encode.NewColors()))
//
// YAML output is produced from the MathJSON form and is never colored.
package encode
