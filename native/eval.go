package native

// Evaluator is the kernel's string evaluation entry point. Implementations
// own their own locking; the converter calls Eval synchronously.
type Evaluator interface {
	Eval(text string) (Node, error)
}

// EvalFunc adapts a function to an Evaluator.
type EvalFunc func(text string) (Node, error)

func (f EvalFunc) Eval(text string) (Node, error) {
	return f(text)
}
