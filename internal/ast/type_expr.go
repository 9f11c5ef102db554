package ast

// TypeExpr is a type-expression node: a reference to a builtin/synonym
// type, an application of a type function, a function-type arrow, a
// tuple of types, a uniqueness-annotated type, or a type-parameter
// occurrence inside a template.
type TypeExpr interface {
	Node
	typeExprNode()
}

// TypeRefExpr references a type-variable (nullary type) by name.
type TypeRefExpr struct {
	Ident *IdentRef
	Pos   Pos
}

func (t *TypeRefExpr) Position() Pos { return t.Pos }
func (t *TypeRefExpr) typeExprNode() {}

// TypeApplicationExpr applies a type-function to argument types, e.g.
// Array(Int32).
type TypeApplicationExpr struct {
	Ident *IdentRef
	Args  []TypeExpr
	Pos   Pos
}

func (t *TypeApplicationExpr) Position() Pos { return t.Pos }
func (t *TypeApplicationExpr) typeExprNode() {}

// TypeArrowExpr is a function type.
type TypeArrowExpr struct {
	Params []TypeExpr
	Result TypeExpr
	Pos    Pos
}

func (t *TypeArrowExpr) Position() Pos { return t.Pos }
func (t *TypeArrowExpr) typeExprNode() {}

// TypeTupleExpr is a tuple type.
type TypeTupleExpr struct {
	Elements []TypeExpr
	Pos      Pos
}

func (t *TypeTupleExpr) Position() Pos { return t.Pos }
func (t *TypeTupleExpr) typeExprNode() {}

// UniquenessTypeExpr wraps an inner type with a unique/non-unique
// annotation.
type UniquenessTypeExpr struct {
	Unique bool
	Inner  TypeExpr
	Pos    Pos
}

func (t *UniquenessTypeExpr) Position() Pos { return t.Pos }
func (t *UniquenessTypeExpr) typeExprNode() {}

// TypeParameterExpr occurs inside a template body and refers to one of
// the template's instance type parameters by name. Index/HasIndex are
// filled in by the resolver (spec.md §4.5.5).
type TypeParameterExpr struct {
	Name     string
	Pos      Pos
	HasIndex bool
	Index    int
}

func (t *TypeParameterExpr) Position() Pos { return t.Pos }
func (t *TypeParameterExpr) typeExprNode() {}
