package ast

// Equal reports whether two nodes are structurally identical, ignoring
// spans. The parser's round-trip tests are stated in terms of this relation.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		if !ok || len(x.Externs) != len(y.Externs) {
			return false
		}
		for i := range x.Externs {
			if !Equal(x.Externs[i], y.Externs[i]) {
				return false
			}
		}
		return Equal(x.Name, y.Name) && Equal(x.Param, y.Param) && Equal(x.Body, y.Body)

	case *ExternDecl:
		y, ok := b.(*ExternDecl)
		return ok && Equal(x.Name, y.Name) && identsEqual(x.Params, y.Params)

	case *FunDecl:
		y, ok := b.(*FunDecl)
		return ok && Equal(x.Name, y.Name) && identsEqual(x.Params, y.Params) && Equal(x.Body, y.Body)

	case *Binding:
		y, ok := b.(*Binding)
		return ok && Equal(x.Var, y.Var) && Equal(x.Expr, y.Expr)

	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name

	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name

	case *Num:
		y, ok := b.(*Num)
		return ok && x.Value == y.Value

	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.Value == y.Value

	case *Prim:
		y, ok := b.(*Prim)
		return ok && x.Op == y.Op && exprsEqual(x.Args, y.Args)

	case *Call:
		y, ok := b.(*Call)
		return ok && x.Fun == y.Fun && exprsEqual(x.Args, y.Args)

	case *Let:
		y, ok := b.(*Let)
		if !ok || len(x.Bindings) != len(y.Bindings) {
			return false
		}
		for i := range x.Bindings {
			if !Equal(x.Bindings[i], y.Bindings[i]) {
				return false
			}
		}
		return Equal(x.Body, y.Body)

	case *If:
		y, ok := b.(*If)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Thn, y.Thn) && Equal(x.Els, y.Els)

	case *FunDefs:
		y, ok := b.(*FunDefs)
		if !ok || len(x.Decls) != len(y.Decls) {
			return false
		}
		for i := range x.Decls {
			if !Equal(x.Decls[i], y.Decls[i]) {
				return false
			}
		}
		return Equal(x.Body, y.Body)

	default:
		return false
	}
}

func identsEqual(a, b []*Ident) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func exprsEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
