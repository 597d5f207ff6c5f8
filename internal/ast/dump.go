package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree rooted at node in an indented debug form, one node
// per line with its span offsets.
func Dump(node Node) string {
	var sb strings.Builder
	dump(&sb, node, 0)
	return sb.String()
}

func dump(sb *strings.Builder, node Node, depth int) {
	if node == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	span := node.Span()

	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(sb, "%sProgram %s [%d..%d]\n", indent, n.Name.Name, span.Start, span.End)
		for _, ext := range n.Externs {
			dump(sb, ext, depth+1)
		}
		fmt.Fprintf(sb, "%s  Param %s\n", indent, n.Param.Name)
		dump(sb, n.Body, depth+1)
	case *ExternDecl:
		fmt.Fprintf(sb, "%sExtern %s(%s) [%d..%d]\n", indent, n.Name.Name, identNames(n.Params), span.Start, span.End)
	case *FunDecl:
		fmt.Fprintf(sb, "%sFunDecl %s(%s) [%d..%d]\n", indent, n.Name.Name, identNames(n.Params), span.Start, span.End)
		dump(sb, n.Body, depth+1)
	case *Binding:
		fmt.Fprintf(sb, "%sBinding %s [%d..%d]\n", indent, n.Var.Name, span.Start, span.End)
		dump(sb, n.Expr, depth+1)
	case *Var:
		fmt.Fprintf(sb, "%sVar %s [%d..%d]\n", indent, n.Name, span.Start, span.End)
	case *Num:
		fmt.Fprintf(sb, "%sNum %d [%d..%d]\n", indent, n.Value, span.Start, span.End)
	case *Bool:
		fmt.Fprintf(sb, "%sBool %t [%d..%d]\n", indent, n.Value, span.Start, span.End)
	case *Prim:
		fmt.Fprintf(sb, "%sPrim %s [%d..%d]\n", indent, primName(n.Op), span.Start, span.End)
		for _, arg := range n.Args {
			dump(sb, arg, depth+1)
		}
	case *Call:
		fmt.Fprintf(sb, "%sCall %s [%d..%d]\n", indent, n.Fun, span.Start, span.End)
		for _, arg := range n.Args {
			dump(sb, arg, depth+1)
		}
	case *Let:
		fmt.Fprintf(sb, "%sLet [%d..%d]\n", indent, span.Start, span.End)
		for _, b := range n.Bindings {
			dump(sb, b, depth+1)
		}
		dump(sb, n.Body, depth+1)
	case *If:
		fmt.Fprintf(sb, "%sIf [%d..%d]\n", indent, span.Start, span.End)
		dump(sb, n.Cond, depth+1)
		dump(sb, n.Thn, depth+1)
		dump(sb, n.Els, depth+1)
	case *FunDefs:
		fmt.Fprintf(sb, "%sFunDefs [%d..%d]\n", indent, span.Start, span.End)
		for _, d := range n.Decls {
			dump(sb, d, depth+1)
		}
		dump(sb, n.Body, depth+1)
	}
}

func identNames(idents []*Ident) string {
	names := make([]string, len(idents))
	for i, id := range idents {
		names[i] = id.Name
	}
	return strings.Join(names, ", ")
}

// primName gives a stable debug name for operators whose String form is
// symbolic.
func primName(op PrimOp) string {
	switch op {
	case PrimAdd:
		return "add"
	case PrimSub:
		return "sub"
	case PrimMul:
		return "mul"
	case PrimNot:
		return "not"
	case PrimAnd:
		return "and"
	case PrimOr:
		return "or"
	case PrimLt:
		return "lt"
	case PrimLe:
		return "le"
	case PrimGt:
		return "gt"
	case PrimGe:
		return "ge"
	case PrimEq:
		return "eq"
	case PrimNeq:
		return "neq"
	default:
		return op.String()
	}
}
