package ast

// Expr is an expression node appearing in a function/lambda body or a
// top-level variable's initializer.
type Expr interface {
	Node
	exprNode()
}

// IdentExpr is a variable reference; Ref carries the as-written segments
// and, after resolution, either a key identifier or a local-variable
// index.
type IdentExpr struct {
	Ref *IdentRef
}

func (e *IdentExpr) Position() Pos { return e.Ref.Pos }
func (e *IdentExpr) exprNode()     {}

// LiteralExpr wraps a literal constant.
type LiteralExpr struct {
	Lit LiteralValue
}

func (e *LiteralExpr) Position() Pos { return e.Lit.Position() }
func (e *LiteralExpr) exprNode()     {}

// LambdaExpr introduces a new local-variable scope over Args, and a
// closure-limit boundary when FuncMod is FunctionPrimitive.
type LambdaExpr struct {
	Args    []*Arg
	Body    Expr
	FuncMod FunctionModifier
	Pos     Pos
}

func (e *LambdaExpr) Position() Pos { return e.Pos }
func (e *LambdaExpr) exprNode()     {}

// ApplyExpr is a function/constructor application by juxtaposition.
type ApplyExpr struct {
	Fn   Expr
	Args []Expr
	Pos  Pos
}

func (e *ApplyExpr) Position() Pos { return e.Pos }
func (e *ApplyExpr) exprNode()     {}

// Binding is one clause of a let group.
type Binding interface {
	Node
	bindingNode()
}

// VariableBinding binds a single name.
type VariableBinding struct {
	Name  string
	Value Expr
	Pos   Pos
}

func (b *VariableBinding) Position() Pos { return b.Pos }
func (b *VariableBinding) bindingNode()  {}

// TupleBinding destructures a tuple-valued expression into several
// names in one binding clause.
type TupleBinding struct {
	Names []string
	Value Expr
	Pos   Pos
}

func (b *TupleBinding) Position() Pos { return b.Pos }
func (b *TupleBinding) bindingNode()  {}

// LetExpr introduces a new local-variable frame. All binding names are
// declared before any right-hand side is resolved, so sibling bindings
// (and the group as a whole) can refer to each other — letrec, not
// sequential let (spec.md §4.5.3).
type LetExpr struct {
	Bindings []Binding
	Body     Expr
	Pos      Pos
}

func (e *LetExpr) Position() Pos { return e.Pos }
func (e *LetExpr) exprNode()     {}

// IfExpr is a conditional.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Pos  Pos
}

func (e *IfExpr) Position() Pos { return e.Pos }
func (e *IfExpr) exprNode()     {}

// Case is one arm of a MatchExpr. Its pattern introduces a fresh local
// frame that the case body is resolved inside of.
type Case struct {
	Pattern Pattern
	Body    Expr
	Pos     Pos
}

// MatchExpr pattern-matches Scrutinee against each Case in order.
type MatchExpr struct {
	Scrutinee Expr
	Cases     []*Case
	Pos       Pos
}

func (e *MatchExpr) Position() Pos { return e.Pos }
func (e *MatchExpr) exprNode()     {}

// TupleExpr constructs a tuple.
type TupleExpr struct {
	Elements []Expr
	Pos      Pos
}

func (e *TupleExpr) Position() Pos { return e.Pos }
func (e *TupleExpr) exprNode()     {}

// ListExpr constructs a list literal.
type ListExpr struct {
	Elements []Expr
	Pos      Pos
}

func (e *ListExpr) Position() Pos { return e.Pos }
func (e *ListExpr) exprNode()     {}

// FieldArg is one `name = value` pair in a named-field constructor
// application. Index/HasIndex are filled in by the resolver once the
// constructor's field map is known (spec.md §4.5.4).
type FieldArg struct {
	Name     string
	Value    Expr
	Pos      Pos
	HasIndex bool
	Index    int
}

// ConstructorAppExpr applies a datatype constructor, positionally or by
// named fields (mutually exclusive: exactly one of PositionalArgs /
// NamedArgs is populated).
type ConstructorAppExpr struct {
	Ctor           *IdentRef
	PositionalArgs []Expr
	NamedArgs      []*FieldArg
	Pos            Pos
}

func (e *ConstructorAppExpr) Position() Pos { return e.Pos }
func (e *ConstructorAppExpr) exprNode()     {}
