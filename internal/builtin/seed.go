// Package builtin seeds a fresh definition tree with the root module,
// the stdlib module, and the primitive types/templates every Vesper
// program can reference without an import (spec.md §4.3).
package builtin

import (
	"fmt"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/tree"
)

// primitiveTypes lists the builtin type-variables seeded into stdlib,
// grounded on the original builtin type adder's table.
var primitiveTypes = []struct {
	name string
	tag  ast.BuiltinTypeTag
}{
	{"Char", ast.BuiltinChar},
	{"WChar", ast.BuiltinWChar},
	{"Int8", ast.BuiltinInt8},
	{"Int16", ast.BuiltinInt16},
	{"Int32", ast.BuiltinInt32},
	{"Int64", ast.BuiltinInt64},
	{"Float", ast.BuiltinFloat},
	{"Double", ast.BuiltinDouble},
}

// primitiveTemplates lists the builtin type-functions seeded into
// stdlib, each of arity 1.
var primitiveTemplates = []struct {
	name string
	tag  ast.BuiltinTemplateTag
}{
	{"Array", ast.BuiltinArray},
	{"UniqueArray", ast.BuiltinUniqueArray},
}

// Seed installs the root module, the stdlib module, and every
// primitive type/template into t. This precedes any parser output and
// can only fail on an internal interner invariant violation, which
// would be a bug in this package rather than in any input program.
func Seed(t *tree.Tree) error {
	rootKey, _ := t.Interner.Intern(nil)
	if !t.AddModule(rootKey) {
		return fmt.Errorf("internal error: root module already present in a fresh tree")
	}

	stdlibKey, _ := t.Interner.Intern([]string{"stdlib"})
	if !t.AddModule(stdlibKey) {
		return fmt.Errorf("internal error: stdlib module already present in a fresh tree")
	}

	for _, p := range primitiveTypes {
		key, _ := t.Interner.Intern([]string{"stdlib", p.name})
		if !t.AddTypeVar(key, ast.AccessNone, &ast.BuiltinTypeVariable{Tag: p.tag}) {
			return fmt.Errorf("internal error: builtin type %s already present in a fresh tree", p.name)
		}
	}

	for _, p := range primitiveTemplates {
		key, _ := t.Interner.Intern([]string{"stdlib", p.name})
		if !t.AddTypeFun(key, ast.AccessNone, &ast.BuiltinTypeFunction{Arity: 1, Tag: p.tag}) {
			return fmt.Errorf("internal error: builtin template %s already present in a fresh tree", p.name)
		}
	}

	return nil
}

// New creates a fresh tree and seeds it. Panics only on the internal
// invariant violations Seed documents, which cannot occur against an
// empty tree.
func New() *tree.Tree {
	t := tree.New()
	if err := Seed(t); err != nil {
		panic(err)
	}
	return t
}
