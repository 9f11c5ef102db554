package ast

// Definition is one parser-delivered top-level (or nested-module)
// declaration. Pass A (C5) walks every definition list; pass B (C6)
// resolves every identifier occurrence reachable from it.
type Definition interface {
	Node
	definitionNode()
}

// ModuleDefinition nests a block of definitions under a module path.
// When Absolute is false, Path is relative to the enclosing module
// (`module module1.module2 { ... }`); when true, Path replaces the
// current module entirely regardless of nesting (`module
// .somelib2.module3 { ... }`, or `module . { ... }` for the root
// itself). Every prefix of the resulting absolute path (including the
// empty prefix) is registered as a module by the declaration pass
// (spec.md §4.4).
type ModuleDefinition struct {
	Path     []string
	Absolute bool
	Defs     []Definition
	Pos      Pos
}

func (d *ModuleDefinition) Position() Pos  { return d.Pos }
func (d *ModuleDefinition) definitionNode() {}

// ImportDefinition is ignored by the declaration pass and consumed only
// by the resolution pass, which resolves Module against the modules
// namespace and pushes it onto the imported-module stack for the
// remainder of its enclosing definition list (spec.md §4.4, §4.5).
type ImportDefinition struct {
	Module *IdentRef
	Pos    Pos
}

func (d *ImportDefinition) Position() Pos  { return d.Pos }
func (d *ImportDefinition) definitionNode() {}

// VariableDefinition declares a name in the variable namespace whose
// body is a non-function Variable kind (UserDefinedVariable,
// ExternalVariable, or AliasVariable).
type VariableDefinition struct {
	Name   string
	Access AccessModifier
	Body   Variable
	Pos    Pos
}

func (d *VariableDefinition) Position() Pos  { return d.Pos }
func (d *VariableDefinition) definitionNode() {}

// FunctionDefinition declares a name in the variable namespace whose
// body is a Function, wrapped into a FunctionVariable by the
// declaration pass.
type FunctionDefinition struct {
	Name   string
	Access AccessModifier
	Fn     Function
	Pos    Pos
}

func (d *FunctionDefinition) Position() Pos  { return d.Pos }
func (d *FunctionDefinition) definitionNode() {}

// TypeVariableDefinition declares a name in the type-variable
// namespace (a nullary type: synonym, datatype, or builtin).
type TypeVariableDefinition struct {
	Name   string
	Access AccessModifier
	TyVar  TypeVariable
	Pos    Pos
}

func (d *TypeVariableDefinition) Position() Pos  { return d.Pos }
func (d *TypeVariableDefinition) definitionNode() {}

// TypeFunctionDefinition declares a name in the type-function namespace
// (a templated type: synonym function, datatype function, or builtin
// template).
type TypeFunctionDefinition struct {
	Name   string
	Access AccessModifier
	TyFun  TypeFunction
	Pos    Pos
}

func (d *TypeFunctionDefinition) Position() Pos  { return d.Pos }
func (d *TypeFunctionDefinition) definitionNode() {}

// VariableInstanceDefinition attaches an instance to an
// already-declared variable template. Not processed by the declaration
// pass; only the full resolution pass attaches it (spec.md §4.4, §4.5.7).
type VariableInstanceDefinition struct {
	Name string
	Body Variable
	Pos  Pos
}

func (d *VariableInstanceDefinition) Position() Pos  { return d.Pos }
func (d *VariableInstanceDefinition) definitionNode() {}

// FunctionInstanceDefinition attaches an instance to an already-declared
// function template.
type FunctionInstanceDefinition struct {
	Name string
	Fn   Function
	Pos  Pos
}

func (d *FunctionInstanceDefinition) Position() Pos  { return d.Pos }
func (d *FunctionInstanceDefinition) definitionNode() {}

// TypeFunctionInstanceDefinition attaches an instance to an
// already-declared type-function template (e.g. a DatatypeFunction).
type TypeFunctionInstanceDefinition struct {
	Name  string
	TyFun TypeFunction
	Pos   Pos
}

func (d *TypeFunctionInstanceDefinition) Position() Pos  { return d.Pos }
func (d *TypeFunctionInstanceDefinition) definitionNode() {}
