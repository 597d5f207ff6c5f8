package ast

import "github.com/diamondback-lang/diamondback/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Ident is a spanned name. It is used for binding occurrences: formal
// parameters, let-bound variables, and declared function names. Variable
// references in expression position are Var nodes.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{
		Name: name,
		span: span,
	}
}

// SetSpan updates the identifier span.
func (i *Ident) SetSpan(span lexer.Span) {
	i.span = span
}

// Program represents a whole parsed program: its extern declarations and the
// single mandatory main definition. Main always takes exactly one parameter,
// unlike user and extern functions which take arbitrary arity.
type Program struct {
	Externs []*ExternDecl
	Name    *Ident // always literally "main"
	Param   *Ident
	Body    Expr
	span    lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node.
func NewProgram(externs []*ExternDecl, name, param *Ident, body Expr, span lexer.Span) *Program {
	return &Program{
		Externs: externs,
		Name:    name,
		Param:   param,
		Body:    body,
		span:    span,
	}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// ExternDecl represents a forward declaration of a function implemented
// outside the program. Its parameters exist for documentation and printing;
// they carry no binding semantics here.
type ExternDecl struct {
	Name   *Ident
	Params []*Ident
	span   lexer.Span
}

// Span returns the declaration span.
func (d *ExternDecl) Span() lexer.Span { return d.span }

// NewExternDecl constructs an extern declaration node.
func NewExternDecl(name *Ident, params []*Ident, span lexer.Span) *ExternDecl {
	return &ExternDecl{
		Name:   name,
		Params: params,
		span:   span,
	}
}

// SetSpan updates the declaration span.
func (d *ExternDecl) SetSpan(span lexer.Span) {
	d.span = span
}

// FunDecl represents one function definition inside a mutually recursive
// group.
type FunDecl struct {
	Name   *Ident
	Params []*Ident
	Body   Expr
	span   lexer.Span
}

// Span returns the declaration span.
func (d *FunDecl) Span() lexer.Span { return d.span }

// NewFunDecl constructs a function declaration node.
func NewFunDecl(name *Ident, params []*Ident, body Expr, span lexer.Span) *FunDecl {
	return &FunDecl{
		Name:   name,
		Params: params,
		Body:   body,
		span:   span,
	}
}

// SetSpan updates the declaration span.
func (d *FunDecl) SetSpan(span lexer.Span) {
	d.span = span
}

// Binding pairs a let-bound variable with its initializer. Binding order in
// the enclosing Let is surface order; no shadowing or duplicate-name policy
// is enforced at this layer.
type Binding struct {
	Var  *Ident
	Expr Expr
	span lexer.Span
}

// Span returns the binding span.
func (b *Binding) Span() lexer.Span { return b.span }

// NewBinding constructs a binding node.
func NewBinding(v *Ident, expr Expr, span lexer.Span) *Binding {
	return &Binding{
		Var:  v,
		Expr: expr,
		span: span,
	}
}

// SetSpan updates the binding span.
func (b *Binding) SetSpan(span lexer.Span) {
	b.span = span
}

// Var is a variable reference.
type Var struct {
	Name string
	span lexer.Span
}

// Span returns the reference span.
func (v *Var) Span() lexer.Span { return v.span }

// NewVar constructs a variable reference node.
func NewVar(name string, span lexer.Span) *Var {
	return &Var{
		Name: name,
		span: span,
	}
}

// SetSpan updates the reference span.
func (v *Var) SetSpan(span lexer.Span) {
	v.span = span
}

func (*Var) exprNode() {}

// Num is a 64-bit signed integer literal.
type Num struct {
	Value int64
	span  lexer.Span
}

// Span returns the literal span.
func (n *Num) Span() lexer.Span { return n.span }

// NewNum constructs an integer literal node.
func NewNum(value int64, span lexer.Span) *Num {
	return &Num{
		Value: value,
		span:  span,
	}
}

// SetSpan updates the literal span.
func (n *Num) SetSpan(span lexer.Span) {
	n.span = span
}

func (*Num) exprNode() {}

// Bool is a boolean literal.
type Bool struct {
	Value bool
	span  lexer.Span
}

// Span returns the literal span.
func (b *Bool) Span() lexer.Span { return b.span }

// NewBool constructs a boolean literal node.
func NewBool(value bool, span lexer.Span) *Bool {
	return &Bool{
		Value: value,
		span:  span,
	}
}

// SetSpan updates the literal span.
func (b *Bool) SetSpan(span lexer.Span) {
	b.span = span
}

func (*Bool) exprNode() {}

// Prim applies a primitive operator to an operand list. All arithmetic,
// comparison, logical, array, and type-test operations share this shape so
// downstream tree-walkers stay exhaustive over one node type.
type Prim struct {
	Op   PrimOp
	Args []Expr
	span lexer.Span
}

// Span returns the application span.
func (p *Prim) Span() lexer.Span { return p.span }

// NewPrim constructs a primitive application node.
func NewPrim(op PrimOp, args []Expr, span lexer.Span) *Prim {
	return &Prim{
		Op:   op,
		Args: args,
		span: span,
	}
}

// SetSpan updates the application span.
func (p *Prim) SetSpan(span lexer.Span) {
	p.span = span
}

func (*Prim) exprNode() {}

// Call is a user or extern function call.
type Call struct {
	Fun  string
	Args []Expr
	span lexer.Span
}

// Span returns the call span.
func (c *Call) Span() lexer.Span { return c.span }

// NewCall constructs a call node.
func NewCall(fun string, args []Expr, span lexer.Span) *Call {
	return &Call{
		Fun:  fun,
		Args: args,
		span: span,
	}
}

// SetSpan updates the call span.
func (c *Call) SetSpan(span lexer.Span) {
	c.span = span
}

func (*Call) exprNode() {}

// Let binds one or more variables, left to right, around a body expression.
type Let struct {
	Bindings []*Binding
	Body     Expr
	span     lexer.Span
}

// Span returns the let span.
func (l *Let) Span() lexer.Span { return l.span }

// NewLet constructs a let node.
func NewLet(bindings []*Binding, body Expr, span lexer.Span) *Let {
	return &Let{
		Bindings: bindings,
		Body:     body,
		span:     span,
	}
}

// SetSpan updates the let span.
func (l *Let) SetSpan(span lexer.Span) {
	l.span = span
}

func (*Let) exprNode() {}

// If is a conditional with mandatory branches.
type If struct {
	Cond Expr
	Thn  Expr
	Els  Expr
	span lexer.Span
}

// Span returns the conditional span.
func (i *If) Span() lexer.Span { return i.span }

// NewIf constructs a conditional node.
func NewIf(cond, thn, els Expr, span lexer.Span) *If {
	return &If{
		Cond: cond,
		Thn:  thn,
		Els:  els,
		span: span,
	}
}

// SetSpan updates the conditional span.
func (i *If) SetSpan(span lexer.Span) {
	i.span = span
}

func (*If) exprNode() {}

// FunDefs introduces a mutually recursive group of function definitions
// scoped over a trailing body. The grouping alone is recorded here; binding
// resolution happens in later phases.
type FunDefs struct {
	Decls []*FunDecl
	Body  Expr
	span  lexer.Span
}

// Span returns the group span.
func (f *FunDefs) Span() lexer.Span { return f.span }

// NewFunDefs constructs a function group node.
func NewFunDefs(decls []*FunDecl, body Expr, span lexer.Span) *FunDefs {
	return &FunDefs{
		Decls: decls,
		Body:  body,
		span:  span,
	}
}

// SetSpan updates the group span.
func (f *FunDefs) SetSpan(span lexer.Span) {
	f.span = span
}

func (*FunDefs) exprNode() {}
