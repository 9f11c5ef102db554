package ast

// Variable is the body of a variable-namespace definition: one of the
// six kinds spec.md §3 enumerates. A Variable wrapping a Function makes
// the definition a function; a Variable wrapping a Constructor is the
// flattened form of a datatype constructor (spec.md §4.4).
type Variable interface {
	variableNode()
}

// UserDefinedVariable is an ordinary top-level value binding.
type UserDefinedVariable struct {
	TypeExpr       TypeExpr // optional, nil if absent
	Value          Expr     // optional, nil for a declaration without a body
	InstTypeParams []string // non-nil marks this definition as a template
}

func (v *UserDefinedVariable) variableNode() {}

// ExternalVariable binds a name to a foreign symbol.
type ExternalVariable struct {
	TypeExpr     TypeExpr
	ExternalName string
}

func (v *ExternalVariable) variableNode() {}

// AliasVariable's value is another variable, resolved by chasing
// Target until a non-alias is found (spec.md §4.5.1 "Alias
// following").
type AliasVariable struct {
	TypeExpr       TypeExpr
	Target         *IdentRef
	InstTypeParams []string
}

func (v *AliasVariable) variableNode() {}

// FunctionVariable wraps a Function.
type FunctionVariable struct {
	Fn Function
}

func (v *FunctionVariable) variableNode() {}

// ConstructorVariable wraps a Constructor produced by flattening a
// datatype definition.
type ConstructorVariable struct {
	Ctor *ConstructorDef
}

func (v *ConstructorVariable) variableNode() {}

// LibraryVariable is a builtin/library-provided variable seeded outside
// of any parsed definition (spec.md §4.3).
type LibraryVariable struct {
	Name string
}

func (v *LibraryVariable) variableNode() {}

// Function is the body of a FunctionVariable.
type Function interface {
	functionNode()
}

// Arg is one formal argument of a user-defined function.
type Arg struct {
	Name string
	Type TypeExpr // optional
	Pos  Pos
}

// UserDefinedFunction is an ordinary or primitive (non-capturing)
// function with a body expression.
type UserDefinedFunction struct {
	Args           []*Arg
	ResultType     TypeExpr // optional
	Body           Expr
	Annotations    []Annotation
	Inline         bool
	FuncMod        FunctionModifier
	InstTypeParams []string // non-nil marks this definition as a template
}

func (f *UserDefinedFunction) functionNode() {}

// ExternalFunction binds a function signature to a foreign symbol.
type ExternalFunction struct {
	Args         []*Arg
	ResultType   TypeExpr
	ExternalName string
}

func (f *ExternalFunction) functionNode() {}

// NativeFunction is implemented directly by the runtime; it has no
// resolvable body.
type NativeFunction struct {
	Name string
	Args []*Arg
}

func (f *NativeFunction) functionNode() {}
