package sym

// Equal reports whether a and b are structurally identical. Symbols are
// equal when their names are, even if they are distinct handles.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Value.Cmp(y.Value) == 0
	case Rational:
		y, ok := b.(Rational)
		return ok && x.Value.Cmp(y.Value) == 0
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case Constant:
		y, ok := b.(Constant)
		return ok && x == y
	case *Add:
		y, ok := b.(*Add)
		return ok && equalAll(x.Args, y.Args)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && equalAll(x.Args, y.Args)
	case *Pow:
		y, ok := b.(*Pow)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exp, y.Exp)
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name && equalAll(x.Args, y.Args)
	case *Relational:
		y, ok := b.(*Relational)
		return ok && x.Op == y.Op && Equal(x.LHS, y.LHS) && Equal(x.RHS, y.RHS)
	case *List:
		y, ok := b.(*List)
		return ok && equalAll(x.Items, y.Items)
	}
	return false
}

func equalAll(as, bs []Expr) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}
