package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/symx/mir"
	"github.com/signadot/symx/native"
)

var out io.Writer = os.Stderr

// Logf writes a diagnostic line to stderr. Interchange and kernel trees
// among args are rendered in their textual forms.
func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, logArgs(args)...)
}

func logArgs(args []any) []any {
	res := make([]any, len(args))
	for i, a := range args {
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				res[i] = fmt.Sprintf("%v", a)
				continue
			}
			res[i] = string(d)
		case *mir.Node:
			if x == nil {
				res[i] = "<nil>"
				continue
			}
			res[i] = x.String()
		case native.Node:
			res[i] = native.Render(x)
		default:
			res[i] = a
		}
	}
	return res
}
