package native

import "errors"

var (
	ErrUnknownKind = errors.New("unknown native node kind")
	ErrBadBigInt   = errors.New("malformed big integer")
)
