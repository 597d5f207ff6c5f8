package ast

import (
	"fmt"
	"strings"
)

// The printer emits canonical surface syntax: parsing its output yields a
// structurally identical tree (spans aside). Binary primitives are always
// fully parenthesized, statement forms are parenthesized whenever they sit
// in an operand position that binds tighter than they do.

// Print renders any node as canonical surface syntax.
func Print(node Node) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func (p *Program) String() string    { return Print(p) }
func (d *ExternDecl) String() string { return Print(d) }
func (d *FunDecl) String() string    { return Print(d) }
func (b *Binding) String() string    { return Print(b) }
func (i *Ident) String() string      { return i.Name }

func (v *Var) String() string     { return Print(v) }
func (n *Num) String() string     { return Print(n) }
func (b *Bool) String() string    { return Print(b) }
func (p *Prim) String() string    { return Print(p) }
func (c *Call) String() string    { return Print(c) }
func (l *Let) String() string     { return Print(l) }
func (i *If) String() string      { return Print(i) }
func (f *FunDefs) String() string { return Print(f) }

func writeNode(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Program:
		for _, ext := range n.Externs {
			writeNode(sb, ext)
			sb.WriteString("\n")
		}
		fmt.Fprintf(sb, "def %s(%s): ", n.Name.Name, n.Param.Name)
		writeNode(sb, n.Body)

	case *ExternDecl:
		fmt.Fprintf(sb, "extern %s(", n.Name.Name)
		writeIdents(sb, n.Params)
		sb.WriteString(") and")

	case *FunDecl:
		fmt.Fprintf(sb, "def %s(", n.Name.Name)
		writeIdents(sb, n.Params)
		sb.WriteString("): ")
		writeNode(sb, n.Body)

	case *Binding:
		fmt.Fprintf(sb, "%s = ", n.Var.Name)
		writeNode(sb, n.Expr)

	case *Ident:
		sb.WriteString(n.Name)

	case *Var:
		sb.WriteString(n.Name)

	case *Num:
		fmt.Fprintf(sb, "%d", n.Value)

	case *Bool:
		fmt.Fprintf(sb, "%t", n.Value)

	case *Prim:
		writePrim(sb, n)

	case *Call:
		sb.WriteString(n.Fun)
		sb.WriteString("(")
		writeExprs(sb, n.Args)
		sb.WriteString(")")

	case *Let:
		sb.WriteString("let ")
		for i, b := range n.Bindings {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, b)
		}
		sb.WriteString(" in ")
		writeNode(sb, n.Body)

	case *If:
		sb.WriteString("if ")
		writeNode(sb, n.Cond)
		sb.WriteString(": ")
		writeNode(sb, n.Thn)
		sb.WriteString(" else: ")
		writeNode(sb, n.Els)

	case *FunDefs:
		for i, d := range n.Decls {
			if i > 0 {
				sb.WriteString(" and ")
			}
			writeNode(sb, d)
		}
		sb.WriteString(" in ")
		writeNode(sb, n.Body)
	}
}

func writePrim(sb *strings.Builder, p *Prim) {
	switch p.Op {
	case PrimAdd1, PrimSub1, PrimIsInt, PrimIsBool, PrimIsArray, PrimNewArray, PrimLength:
		sb.WriteString(p.Op.String())
		sb.WriteString("(")
		writeNode(sb, p.Args[0])
		sb.WriteString(")")

	case PrimNot:
		sb.WriteString("!")
		writeBaseOperand(sb, p.Args[0])

	case PrimMakeArray:
		sb.WriteString("[")
		writeExprs(sb, p.Args)
		sb.WriteString("]")

	case PrimArrayGet:
		writeBaseOperand(sb, p.Args[0])
		sb.WriteString("[")
		writeNode(sb, p.Args[1])
		sb.WriteString("]")

	case PrimArraySet:
		writeBaseOperand(sb, p.Args[0])
		sb.WriteString("[")
		writeNode(sb, p.Args[1])
		sb.WriteString("] := ")
		writeOperand(sb, p.Args[2])

	default: // binary operators
		sb.WriteString("(")
		writeOperand(sb, p.Args[0])
		sb.WriteString(" ")
		sb.WriteString(p.Op.String())
		sb.WriteString(" ")
		writeOperand(sb, p.Args[1])
		sb.WriteString(")")
	}
}

func writeIdents(sb *strings.Builder, idents []*Ident) {
	for i, id := range idents {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(id.Name)
	}
}

func writeExprs(sb *strings.Builder, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeNode(sb, e)
	}
}

// writeOperand renders e in an operator-operand position: statement forms
// and array assignments bind looser than any operator and must be
// parenthesized to survive a reparse.
func writeOperand(sb *strings.Builder, e Expr) {
	if needsOperandParens(e) {
		sb.WriteString("(")
		writeNode(sb, e)
		sb.WriteString(")")
		return
	}
	writeNode(sb, e)
}

// writeBaseOperand renders e where the grammar requires a base expression:
// the operand of '!' and the target of indexing.
func writeBaseOperand(sb *strings.Builder, e Expr) {
	if !printsAsBase(e) {
		sb.WriteString("(")
		writeNode(sb, e)
		sb.WriteString(")")
		return
	}
	writeNode(sb, e)
}

func needsOperandParens(e Expr) bool {
	switch n := e.(type) {
	case *Let, *If, *FunDefs:
		return true
	case *Prim:
		return n.Op == PrimArraySet
	default:
		return false
	}
}

// printsAsBase reports whether the printed form of e is a base expression:
// a literal, variable, call, keyword-primitive application, array literal,
// index, or a parenthesized binary application.
func printsAsBase(e Expr) bool {
	switch n := e.(type) {
	case *Var, *Num, *Bool, *Call:
		return true
	case *Prim:
		switch n.Op {
		case PrimNot, PrimArraySet:
			return false
		default:
			return true
		}
	default:
		return false
	}
}
