package mir

import "errors"

var (
	ErrParse       = errors.New("mathjson parse error")
	ErrNoNumber    = errors.New("number node without a value")
	ErrBadSymbol   = errors.New("bad symbol")
	ErrBadFunction = errors.New("bad function")
)
