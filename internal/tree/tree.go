// Package tree holds the definition tree: the resolved symbol tables
// layered over the identifier interner (spec.md §3 "Tree", §4.2).
package tree

import (
	"github.com/google/uuid"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/ident"
)

// Instance is one instance attachment collected during resolution for
// a template (variable, function, or type-function) and consumed by
// later phases (spec.md §4.5.7).
type Instance struct {
	Variable ast.Variable     // set for variable/function instances
	TypeFun  ast.TypeFunction // set for type-function instances
	Pos      ast.Pos
}

// VariableInfo is the per-key record in the variables namespace.
type VariableInfo struct {
	Access   ast.AccessModifier
	Variable ast.Variable
	Instances []Instance

	// Constructor-only metadata, populated only when Variable is a
	// *ast.ConstructorVariable (spec.md §4.4 "Constructor flattening").
	HasDatatypeFun bool

	ctorAccessFinal bool
	ctorAccess      ast.AccessModifier
	ctorDatatypeKey ident.Key
	hasDatatypeKey  bool
	pendingDatatype ident.Absolute // non-nil => lazy lookup required
}

// SetCtorDatatypeKey records that this constructor's owning datatype is
// statically named and already interned: the access modifier can be
// read off its TypeVariableInfo/TypeFunctionInfo immediately.
func (vi *VariableInfo) SetCtorDatatypeKey(k ident.Key) {
	vi.hasDatatypeKey = true
	vi.ctorDatatypeKey = k
}

// SetCtorPendingDatatype records a deferred datatype-ident string (used
// for constructors of a DatatypeFunctionInstance, whose parent access
// is only known once that instance's attachment point is resolved).
// This is the "enum AccessState { Final(Access), Pending(name) }" model
// from spec.md §9.
func (vi *VariableInfo) SetCtorPendingDatatype(path ident.Absolute) {
	vi.pendingDatatype = path
}

// EffectiveAccess resolves the constructor's final access modifier,
// performing the lazy datatype lookup on first call and caching the
// result. For non-constructor variables it is simply Access.
func (vi *VariableInfo) EffectiveAccess(t *Tree) ast.AccessModifier {
	if _, ok := vi.Variable.(*ast.ConstructorVariable); !ok {
		return vi.Access
	}
	if vi.ctorAccessFinal {
		return maxAccess(vi.Access, vi.ctorAccess)
	}

	var datatypeAccess ast.AccessModifier
	switch {
	case vi.hasDatatypeKey:
		if info, ok := t.TypeVarInfo(vi.ctorDatatypeKey); ok {
			datatypeAccess = info.Access
		} else if info, ok := t.TypeFunInfo(vi.ctorDatatypeKey); ok {
			datatypeAccess = info.Access
		}
	case vi.pendingDatatype != nil:
		if key, ok := t.Interner.LookupKey(vi.pendingDatatype); ok {
			vi.ctorDatatypeKey = key
			vi.hasDatatypeKey = true
			if info, ok := t.TypeVarInfo(key); ok {
				datatypeAccess = info.Access
			} else if info, ok := t.TypeFunInfo(key); ok {
				datatypeAccess = info.Access
			}
		}
	}
	vi.ctorAccess = datatypeAccess
	vi.ctorAccessFinal = true
	return maxAccess(vi.Access, vi.ctorAccess)
}

func maxAccess(a, b ast.AccessModifier) ast.AccessModifier {
	if a == ast.AccessPrivate || b == ast.AccessPrivate {
		return ast.AccessPrivate
	}
	return ast.AccessNone
}

// TypeVariableInfo is the per-key record in the type-variables
// namespace.
type TypeVariableInfo struct {
	Access   ast.AccessModifier
	TypeVar  ast.TypeVariable
}

// TypeFunctionInfo is the per-key record in the type-functions
// namespace.
type TypeFunctionInfo struct {
	Access    ast.AccessModifier
	TypeFun   ast.TypeFunction
	Instances []Instance
}

// Tree is the definition tree: the four namespaces (modules, variables,
// type-variables, type-functions) sharing one interner, plus the
// worklists published to later phases (spec.md §3).
type Tree struct {
	Interner *ident.Interner
	UnitID   string

	modules  map[ident.Key]struct{}
	vars     map[ident.Key]*VariableInfo
	typeVars map[ident.Key]*TypeVariableInfo
	typeFuns map[ident.Key]*TypeFunctionInfo

	uncompiledVarKeys     []ident.Key
	uncompiledTypeVarKeys []ident.Key
	uncompiledTypeFunKeys []ident.Key
}

// New creates an empty definition tree.
func New() *Tree {
	return &Tree{
		Interner: ident.New(),
		UnitID:   uuid.NewString(),
		modules:  make(map[ident.Key]struct{}),
		vars:     make(map[ident.Key]*VariableInfo),
		typeVars: make(map[ident.Key]*TypeVariableInfo),
		typeFuns: make(map[ident.Key]*TypeFunctionInfo),
	}
}

// AddModule registers key as a module. Returns true iff it was not
// already present. Membership is a plain set check (HasModule reports
// true when the key is present), not the inverted check the original
// implementation used (spec.md §9 Open Questions).
func (t *Tree) AddModule(k ident.Key) bool {
	if _, ok := t.modules[k]; ok {
		return false
	}
	t.modules[k] = struct{}{}
	return true
}

// HasModule reports whether key is a registered module.
func (t *Tree) HasModule(k ident.Key) bool {
	_, ok := t.modules[k]
	return ok
}

// AddVar inserts a new variable at key. Returns false (no-op) if a
// variable already exists at that key — the caller must report a
// redefinition error.
func (t *Tree) AddVar(k ident.Key, access ast.AccessModifier, v ast.Variable) bool {
	if _, ok := t.vars[k]; ok {
		return false
	}
	t.vars[k] = &VariableInfo{Access: access, Variable: v}
	t.uncompiledVarKeys = append(t.uncompiledVarKeys, k)
	return true
}

// VarInfo looks up the variable record at key.
func (t *Tree) VarInfo(k ident.Key) (*VariableInfo, bool) {
	vi, ok := t.vars[k]
	return vi, ok
}

// AddTypeVar inserts a new type-variable at key.
func (t *Tree) AddTypeVar(k ident.Key, access ast.AccessModifier, tv ast.TypeVariable) bool {
	if _, ok := t.typeVars[k]; ok {
		return false
	}
	t.typeVars[k] = &TypeVariableInfo{Access: access, TypeVar: tv}
	t.uncompiledTypeVarKeys = append(t.uncompiledTypeVarKeys, k)
	return true
}

// TypeVarInfo looks up the type-variable record at key.
func (t *Tree) TypeVarInfo(k ident.Key) (*TypeVariableInfo, bool) {
	tv, ok := t.typeVars[k]
	return tv, ok
}

// AddTypeFun inserts a new type-function at key.
func (t *Tree) AddTypeFun(k ident.Key, access ast.AccessModifier, tf ast.TypeFunction) bool {
	if _, ok := t.typeFuns[k]; ok {
		return false
	}
	t.typeFuns[k] = &TypeFunctionInfo{Access: access, TypeFun: tf}
	t.uncompiledTypeFunKeys = append(t.uncompiledTypeFunKeys, k)
	return true
}

// TypeFunInfo looks up the type-function record at key.
func (t *Tree) TypeFunInfo(k ident.Key) (*TypeFunctionInfo, bool) {
	tf, ok := t.typeFuns[k]
	return tf, ok
}

// UncompiledVarKeys returns the variable keys in declaration order.
func (t *Tree) UncompiledVarKeys() []ident.Key { return t.uncompiledVarKeys }

// UncompiledTypeVarKeys returns the type-variable keys in declaration
// order.
func (t *Tree) UncompiledTypeVarKeys() []ident.Key { return t.uncompiledTypeVarKeys }

// UncompiledTypeFunKeys returns the type-function keys in declaration
// order.
func (t *Tree) UncompiledTypeFunKeys() []ident.Key { return t.uncompiledTypeFunKeys }
