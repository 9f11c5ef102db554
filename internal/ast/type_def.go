package ast

// BuiltinTypeTag identifies a primitive type seeded by the builtin
// adder (spec.md §4.3).
type BuiltinTypeTag int

const (
	BuiltinChar BuiltinTypeTag = iota
	BuiltinWChar
	BuiltinInt8
	BuiltinInt16
	BuiltinInt32
	BuiltinInt64
	BuiltinFloat
	BuiltinDouble
)

func (t BuiltinTypeTag) String() string {
	switch t {
	case BuiltinChar:
		return "Char"
	case BuiltinWChar:
		return "WChar"
	case BuiltinInt8:
		return "Int8"
	case BuiltinInt16:
		return "Int16"
	case BuiltinInt32:
		return "Int32"
	case BuiltinInt64:
		return "Int64"
	case BuiltinFloat:
		return "Float"
	case BuiltinDouble:
		return "Double"
	default:
		return "?"
	}
}

// BuiltinTemplateTag identifies a primitive type template seeded by the
// builtin adder.
type BuiltinTemplateTag int

const (
	BuiltinArray BuiltinTemplateTag = iota
	BuiltinUniqueArray
)

func (t BuiltinTemplateTag) String() string {
	if t == BuiltinUniqueArray {
		return "UniqueArray"
	}
	return "Array"
}

// TypeVariable is the body of a type-variable-namespace definition
// (a nullary type).
type TypeVariable interface {
	typeVariableNode()
}

// TypeSynonymVariable is a `type X = <type expr>` alias.
type TypeSynonymVariable struct {
	TypeExpr TypeExpr
}

func (t *TypeSynonymVariable) typeVariableNode() {}

// DatatypeVariable is a nullary (non-templated) algebraic type.
type DatatypeVariable struct {
	Datatype Datatype
}

func (t *DatatypeVariable) typeVariableNode() {}

// BuiltinTypeVariable is a seeded primitive type.
type BuiltinTypeVariable struct {
	Tag BuiltinTypeTag
}

func (t *BuiltinTypeVariable) typeVariableNode() {}

// TypeFunction is the body of a type-function-namespace definition
// (a type constructor / template of arity >= 1).
type TypeFunction interface {
	typeFunctionNode()
	arity() int
}

// TypeSynonymFunction is a parameterized type synonym.
type TypeSynonymFunction struct {
	Arity          int
	InstTypeParams []string
	TypeArgs       []string
	Body           TypeExpr
}

func (t *TypeSynonymFunction) typeFunctionNode() {}
func (t *TypeSynonymFunction) arity() int        { return t.Arity }

// DatatypeFunction is a templated algebraic type, e.g. `data Tree(a)`.
type DatatypeFunction struct {
	Arity          int
	InstTypeParams []string
	TypeArgs       []string
	Body           Datatype
}

func (t *DatatypeFunction) typeFunctionNode() {}
func (t *DatatypeFunction) arity() int        { return t.Arity }

// DatatypeFunctionInstance is an instance attachment to an already
// declared DatatypeFunction template (spec.md §4.5.7).
type DatatypeFunctionInstance struct {
	Arity    int
	TypeArgs []string
	Body     Datatype

	// ParentIdent names the generic datatype function this instance
	// attaches to; resolved during the full pass.
	ParentIdent *IdentRef
}

func (t *DatatypeFunctionInstance) typeFunctionNode() {}
func (t *DatatypeFunctionInstance) arity() int        { return t.Arity }

// TypeSynonymFunctionInstance is an instance attachment to an already
// declared TypeSynonymFunction template (spec.md §4.5.7) — e.g.
// `instance List(Int) = Array(Int)` attaching to a generic synonym
// template.
type TypeSynonymFunctionInstance struct {
	Arity    int
	TypeArgs []string
	Body     TypeExpr

	// ParentIdent names the generic type synonym this instance attaches
	// to; resolved during the full pass.
	ParentIdent *IdentRef
}

func (t *TypeSynonymFunctionInstance) typeFunctionNode() {}
func (t *TypeSynonymFunctionInstance) arity() int        { return t.Arity }

// BuiltinTypeFunction is a seeded primitive type template (Array,
// UniqueArray).
type BuiltinTypeFunction struct {
	Arity int
	Tag   BuiltinTemplateTag
}

func (t *BuiltinTypeFunction) typeFunctionNode() {}
func (t *BuiltinTypeFunction) arity() int        { return t.Arity }
