package fallback

import (
	"errors"
	"fmt"
)

var ErrSyntax = errors.New("syntax fallback error")

// SyntaxError reports a fragment of kernel text that no parsing strategy
// could interpret.
type SyntaxError struct {
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("cannot parse %q", e.Text)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
