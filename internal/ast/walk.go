package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, ext := range n.Externs {
			Walk(ext, fn)
		}
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Param != nil {
			Walk(n.Param, fn)
		}
		Walk(n.Body, fn)

	case *ExternDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}

	case *FunDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		Walk(n.Body, fn)

	case *Binding:
		if n.Var != nil {
			Walk(n.Var, fn)
		}
		Walk(n.Expr, fn)

	case *Prim:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Call:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Let:
		for _, binding := range n.Bindings {
			Walk(binding, fn)
		}
		Walk(n.Body, fn)

	case *If:
		Walk(n.Cond, fn)
		Walk(n.Thn, fn)
		Walk(n.Els, fn)

	case *FunDefs:
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}
		Walk(n.Body, fn)
	}
}

// Inspect calls fn for every node in the tree rooted at node.
func Inspect(node Node, fn func(Node)) {
	Walk(node, func(n Node) bool {
		fn(n)
		return true
	})
}

// CountNodes returns the number of nodes in the tree rooted at node.
func CountNodes(node Node) int {
	count := 0
	Inspect(node, func(Node) {
		count++
	})
	return count
}
