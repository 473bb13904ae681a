package convert

import (
	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/fallback"
	"github.com/signadot/symx/native"
)

// Converter translates between kernel, interchange and second-system trees.
// It holds configuration only and is safe for concurrent use if its
// evaluator is.
type Converter struct {
	eval       native.Evaluator
	warn       func(error)
	textualBig bool
	preserve   fallback.Set
}

type Option func(*Converter)

func New(opts ...Option) *Converter {
	c := &Converter{
		warn:     logWarning,
		preserve: fallback.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithEvaluator sets the kernel entry point used by the textual fallbacks.
// Without one, those fallbacks fail with ErrNoEvaluator.
func WithEvaluator(e native.Evaluator) Option {
	return func(c *Converter) { c.eval = e }
}

// WithWarnings sets the sink for non-fatal conversion warnings.
func WithWarnings(f func(error)) Option {
	return func(c *Converter) {
		if f == nil {
			f = func(error) {}
		}
		c.warn = f
	}
}

// TextualBigInts makes the backward direction build big integers by
// evaluating their decimal text rather than through the byte transcoder.
func TextualBigInts(v bool) Option {
	return func(c *Converter) { c.textualBig = v }
}

// WithPreserve sets the functions the syntax fallback keeps symbolic.
func WithPreserve(s fallback.Set) Option {
	return func(c *Converter) { c.preserve = s }
}

func logWarning(err error) {
	if debug.Warn() {
		debug.Logf("warning: %v\n", err)
	}
}
