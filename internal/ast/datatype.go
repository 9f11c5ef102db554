package ast

// Datatype is an algebraic type: a closed list of constructors, either
// ordinary (NonUniqueDatatype) or restricted to function-constructors
// for unique values (UniqueDatatype).
type Datatype interface {
	Node
	datatypeNode()
}

type NonUniqueDatatype struct {
	Constructors []*ConstructorDef
	Pos          Pos
}

func (d *NonUniqueDatatype) Position() Pos { return d.Pos }
func (d *NonUniqueDatatype) datatypeNode() {}

type UniqueDatatype struct {
	Constructors []*ConstructorDef
	Pos          Pos
}

func (d *UniqueDatatype) Position() Pos { return d.Pos }
func (d *UniqueDatatype) datatypeNode() {}

// ConstructorDef is one constructor of a datatype as written by the
// parser, before the declaration pass flattens it into its own
// ConstructorVariable (spec.md §4.4).
type ConstructorDef struct {
	Name   string
	Access AccessModifier
	Pos    Pos
	Kind   ConstructorKind

	// Annotations applies only to ConstructorUnnamedFields/
	// ConstructorNamedFields: a function-constructor of a unique
	// datatype can carry the same eager/lazy/memoized annotations as an
	// ordinary function (spec.md §4.5.6, §9 "function constructors").
	Annotations []Annotation

	// UnnamedFields is populated when Kind == ConstructorUnnamedFields.
	UnnamedFields []TypeExpr

	// NamedFields is populated when Kind == ConstructorNamedFields.
	NamedFields []*NamedField

	// FieldIndices maps field name to its 0-based index; computed
	// during the declaration pass in first-seen source order, and
	// checked for duplicates when the datatype is resolved.
	FieldIndices map[string]int
}

func (c *ConstructorDef) Position() Pos { return c.Pos }

// ConstructorKind distinguishes the three constructor shapes spec.md §3
// names: nullary (VariableConstructor), positional
// (UnnamedFieldConstructor), and record-like (NamedFieldConstructor).
type ConstructorKind int

const (
	ConstructorVariableKind ConstructorKind = iota
	ConstructorUnnamedFields
	ConstructorNamedFields
)

// NamedField is one field of a NamedFieldConstructor. Default, if
// non-nil, is a compile-time-constant value used by downstream phases
// when a named-field application omits this field.
type NamedField struct {
	Name    string
	Type    TypeExpr
	Default Value
	Pos     Pos
}
