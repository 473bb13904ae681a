// Package format names the output forms of an interchange tree: MathJSON,
// YAML and a compact functional text notation.
package format
