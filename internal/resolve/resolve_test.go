package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/builtin"
	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/ident"
	"github.com/vesper-lang/vesper/internal/resolve"
)

func pos(line int) ast.Pos { return ast.Pos{File: "t.ves", Line: line, Column: 1} }

func intLit(n int64, line int) *ast.LiteralExpr {
	return &ast.LiteralExpr{Lit: &ast.IntLiteral{Value: n, Pos: pos(line)}}
}

func identExpr(segs []string, line int) *ast.IdentExpr {
	return &ast.IdentExpr{Ref: ast.NewIdentRef(segs, pos(line))}
}

// S1 — simple resolve (spec.md §8 S1): v, f, g declare with NONE access;
// f/g's argument x resolves locally; g's references to f and v resolve
// to the corresponding global keys; uncompiled var keys preserve source
// order.
func TestResolve_S1_SimpleResolve(t *testing.T) {
	xInF := identExpr([]string{"x"}, 2)
	xInG := identExpr([]string{"x"}, 3)
	fInG := identExpr([]string{"f"}, 3)
	vInG := identExpr([]string{"v"}, 3)

	defs := []ast.Definition{
		&ast.VariableDefinition{Name: "v", Body: &ast.UserDefinedVariable{Value: intLit(1, 1)}, Pos: pos(1)},
		&ast.FunctionDefinition{
			Name: "f",
			Fn:   &ast.UserDefinedFunction{Args: []*ast.Arg{{Name: "x", Pos: pos(2)}}, Body: xInF},
			Pos:  pos(2),
		},
		&ast.FunctionDefinition{
			Name: "g",
			Fn: &ast.UserDefinedFunction{
				Args: []*ast.Arg{{Name: "x", Pos: pos(3)}},
				Body: &ast.TupleExpr{Elements: []ast.Expr{
					&ast.ApplyExpr{Fn: fInG, Args: []ast.Expr{xInG}, Pos: pos(3)},
					vInG,
				}, Pos: pos(3)},
			},
			Pos: pos(3),
		},
	}

	tr, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.True(t, errAcc.Ok(), "unexpected errors: %v", errAcc.Errors())

	vKey, ok := tr.Interner.LookupKey([]string{"v"})
	require.True(t, ok)
	fKey, ok := tr.Interner.LookupKey([]string{"f"})
	require.True(t, ok)
	gKey, ok := tr.Interner.LookupKey([]string{"g"})
	require.True(t, ok)

	for _, key := range []ident.Key{vKey, fKey, gKey} {
		vi, ok := tr.VarInfo(key)
		require.True(t, ok)
		require.Equal(t, ast.AccessNone, vi.Access)
	}

	require.True(t, xInF.Ref.HasLocal)
	require.Equal(t, 0, xInF.Ref.LocalIndex)

	require.True(t, xInG.Ref.HasLocal)
	require.Equal(t, 0, xInG.Ref.LocalIndex)
	require.True(t, fInG.Ref.HasKey)
	require.Equal(t, fKey, fInG.Ref.Key)
	require.True(t, vInG.Ref.HasKey)
	require.Equal(t, vKey, vInG.Ref.Key)

	require.Equal(t, []ident.Key{vKey, fKey, gKey}, tr.UncompiledVarKeys())
}

// S2 — nested modules (spec.md §8 S2): relative nesting, an absolute
// ".somelib2.module3" path, and "module . { ... }" returning to root all
// register the expected module set and variable paths.
func TestResolve_S2_NestedModules(t *testing.T) {
	defs := []ast.Definition{
		&ast.ModuleDefinition{
			Path: []string{"somelib"},
			Defs: []ast.Definition{
				&ast.FunctionDefinition{Name: "f", Fn: &ast.UserDefinedFunction{Body: intLit(1, 1)}, Pos: pos(1)},
				&ast.ModuleDefinition{
					Path: []string{"module1", "module2"},
					Defs: []ast.Definition{
						&ast.FunctionDefinition{Name: "g", Fn: &ast.UserDefinedFunction{Body: intLit(2, 1)}, Pos: pos(1)},
					},
					Pos: pos(1),
				},
				&ast.ModuleDefinition{
					Path:     []string{"somelib2", "module3"},
					Absolute: true,
					Defs: []ast.Definition{
						&ast.FunctionDefinition{Name: "h", Fn: &ast.UserDefinedFunction{Body: intLit(3, 1)}, Pos: pos(1)},
					},
					Pos: pos(1),
				},
				&ast.ModuleDefinition{
					Path:     nil,
					Absolute: true,
					Defs: []ast.Definition{
						&ast.FunctionDefinition{Name: "i", Fn: &ast.UserDefinedFunction{Body: intLit(4, 1)}, Pos: pos(1)},
					},
					Pos: pos(1),
				},
			},
			Pos: pos(1),
		},
	}

	tr, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.True(t, errAcc.Ok(), "unexpected errors: %v", errAcc.Errors())

	moduleSet := [][]string{
		nil,
		{"somelib"},
		{"somelib", "module1"},
		{"somelib", "module1", "module2"},
		{"somelib2"},
		{"somelib2", "module3"},
	}
	for _, segs := range moduleSet {
		key, ok := tr.Interner.LookupKey(segs)
		require.True(t, ok, "module %v not interned", segs)
		require.True(t, tr.HasModule(key), "module %v not registered", segs)
	}

	varPaths := [][]string{
		{"somelib", "f"},
		{"somelib", "module1", "module2", "g"},
		{"somelib2", "module3", "h"},
		{"i"},
	}
	for _, segs := range varPaths {
		key, ok := tr.Interner.LookupKey(segs)
		require.True(t, ok, "variable %v not interned", segs)
		_, ok = tr.VarInfo(key)
		require.True(t, ok, "variable %v not declared", segs)
	}
}

// S3 — alias cycle (spec.md §8 S3): a cycle is only observable where
// something dereferences through it to a non-alias target — here a
// constructor-application occurrence — matching get_non_alias_var's own
// call sites in the original resolver (never the bare alias definitions
// themselves).
func TestResolve_S3_AliasCycle(t *testing.T) {
	ctorRef := ast.NewIdentRef([]string{"a"}, pos(3))
	defs := []ast.Definition{
		&ast.VariableDefinition{Name: "a", Body: &ast.AliasVariable{Target: ast.NewIdentRef([]string{"b"}, pos(1))}, Pos: pos(1)},
		&ast.VariableDefinition{Name: "b", Body: &ast.AliasVariable{Target: ast.NewIdentRef([]string{"a"}, pos(2))}, Pos: pos(2)},
		&ast.FunctionDefinition{
			Name: "use",
			Fn:   &ast.UserDefinedFunction{Body: &ast.ConstructorAppExpr{Ctor: ctorRef, Pos: pos(3)}},
			Pos:  pos(3),
		},
	}

	_, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.False(t, errAcc.Ok())
	require.Len(t, errAcc.Errors(), 1)
	require.Equal(t, errs.RSV008, errAcc.Errors()[0].Code)
	require.Contains(t, errAcc.Errors()[0].Message, "alias cycle")
}

// S4 — private violation (spec.md §8 S4): `n`'s reference to `.m.v`
// (written with a leading "." so resolution is absolute, not routed
// through the current-module/import search order) hits a private
// variable declared in a different module and is rejected.
func TestResolve_S4_PrivateViolation(t *testing.T) {
	wRef := ast.NewAbsoluteIdentRef([]string{"m", "v"}, pos(2))
	defs := []ast.Definition{
		&ast.ModuleDefinition{
			Path: []string{"m"},
			Defs: []ast.Definition{
				&ast.VariableDefinition{Name: "v", Access: ast.AccessPrivate, Body: &ast.UserDefinedVariable{Value: intLit(1, 1)}, Pos: pos(1)},
			},
			Pos: pos(1),
		},
		&ast.ModuleDefinition{
			Path: []string{"n"},
			Defs: []ast.Definition{
				&ast.VariableDefinition{Name: "w", Body: &ast.UserDefinedVariable{Value: &ast.IdentExpr{Ref: wRef}}, Pos: pos(2)},
			},
			Pos: pos(2),
		},
	}

	_, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.False(t, errAcc.Ok())
	require.Len(t, errAcc.Errors(), 1)
	require.Equal(t, errs.RSV004, errAcc.Errors()[0].Code)
	require.Contains(t, errAcc.Errors()[0].Message, "is private")
	require.False(t, wRef.Resolved())
}

// S5 — duplicate field (spec.md §8 S5): a named-field constructor
// application repeating field "a" records one error and still stamps
// the second occurrence's index.
func TestResolve_S5_DuplicateField(t *testing.T) {
	selfRef := &ast.TypeRefExpr{Ident: ast.NewIdentRef([]string{"T"}, pos(1)), Pos: pos(1)}
	ctorDef := &ast.ConstructorDef{
		Name: "C",
		Kind: ast.ConstructorNamedFields,
		NamedFields: []*ast.NamedField{
			{Name: "a", Type: selfRef, Pos: pos(1)},
		},
		Pos: pos(1),
	}
	firstArg := &ast.FieldArg{Name: "a", Value: intLit(1, 2), Pos: pos(2)}
	secondArg := &ast.FieldArg{Name: "a", Value: intLit(2, 2), Pos: pos(2)}

	defs := []ast.Definition{
		&ast.TypeVariableDefinition{
			Name:  "T",
			TyVar: &ast.DatatypeVariable{Datatype: &ast.NonUniqueDatatype{Constructors: []*ast.ConstructorDef{ctorDef}, Pos: pos(1)}},
			Pos:   pos(1),
		},
		&ast.FunctionDefinition{
			Name: "use",
			Fn: &ast.UserDefinedFunction{Body: &ast.ConstructorAppExpr{
				Ctor:      ast.NewIdentRef([]string{"C"}, pos(2)),
				NamedArgs: []*ast.FieldArg{firstArg, secondArg},
				Pos:       pos(2),
			}},
			Pos: pos(2),
		},
	}

	_, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.False(t, errAcc.Ok())
	require.Len(t, errAcc.Errors(), 1)
	require.Equal(t, errs.RSV007, errAcc.Errors()[0].Code)
	require.Contains(t, errAcc.Errors()[0].Message, "field a is already specified")

	require.True(t, firstArg.HasIndex)
	require.True(t, secondArg.HasIndex)
	require.Equal(t, firstArg.Index, secondArg.Index)
}

// S6 — closure boundary (spec.md §8 S6): inside a primitive lambda, a
// reference to an outer local is "undefined" rather than any kind/private
// error, and the outer local stays reachable outside the lambda.
func TestResolve_S6_ClosureBoundary(t *testing.T) {
	xInLambda := identExpr([]string{"x"}, 1)
	xOutside := identExpr([]string{"x"}, 1)

	defs := []ast.Definition{
		&ast.FunctionDefinition{
			Name: "f",
			Fn: &ast.UserDefinedFunction{
				Args: []*ast.Arg{{Name: "x", Pos: pos(1)}},
				Body: &ast.TupleExpr{Elements: []ast.Expr{
					&ast.LambdaExpr{
						FuncMod: ast.FunctionPrimitive,
						Body:    xInLambda,
						Pos:     pos(1),
					},
					xOutside,
				}, Pos: pos(1)},
			},
			Pos: pos(1),
		},
	}

	_, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.False(t, errAcc.Ok())
	require.Len(t, errAcc.Errors(), 1)
	require.Equal(t, errs.RSV003, errAcc.Errors()[0].Code)
	require.Contains(t, errAcc.Errors()[0].Message, "is undefined")
	require.False(t, xInLambda.Ref.Resolved())

	require.True(t, xOutside.Ref.HasLocal)
	require.Equal(t, 0, xOutside.Ref.LocalIndex)
}

// Boundary behavior (spec.md §8): an empty definition list still
// succeeds and the tree holds only root, stdlib, and the seeded
// builtins.
func TestResolve_EmptyDefsSucceeds(t *testing.T) {
	tr, errAcc := resolve.Resolve([]*ast.Source{{File: "empty.ves", Defs: nil}})
	require.True(t, errAcc.Ok())

	rootKey, ok := tr.Interner.LookupKey(nil)
	require.True(t, ok)
	require.True(t, tr.HasModule(rootKey))

	stdlibKey, ok := tr.Interner.LookupKey([]string{"stdlib"})
	require.True(t, ok)
	require.True(t, tr.HasModule(stdlibKey))
}

// Boundary behavior (spec.md §8): a local definition shadows an import
// of the same name — step 2 (current module) beats step 3 (imports).
func TestResolve_LocalDefinitionShadowsImport(t *testing.T) {
	use := identExpr([]string{"v"}, 2)
	defs := []ast.Definition{
		&ast.ModuleDefinition{
			Path: []string{"lib"},
			Defs: []ast.Definition{
				&ast.VariableDefinition{Name: "v", Body: &ast.UserDefinedVariable{Value: intLit(99, 1)}, Pos: pos(1)},
			},
			Pos: pos(1),
		},
		&ast.ImportDefinition{Module: ast.NewAbsoluteIdentRef([]string{"lib"}, pos(2)), Pos: pos(2)},
		&ast.VariableDefinition{Name: "v", Body: &ast.UserDefinedVariable{Value: intLit(1, 2)}, Pos: pos(2)},
		&ast.FunctionDefinition{
			Name: "f",
			Fn:   &ast.UserDefinedFunction{Body: use},
			Pos:  pos(2),
		},
	}

	tr, errAcc := resolve.Resolve([]*ast.Source{{File: "t.ves", Defs: defs}})
	require.True(t, errAcc.Ok(), "unexpected errors: %v", errAcc.Errors())

	rootVKey, ok := tr.Interner.LookupKey([]string{"v"})
	require.True(t, ok)
	require.True(t, use.Ref.HasKey)
	require.Equal(t, rootVKey, use.Ref.Key)
}

// Round-trip: interning the same path twice returns the same key and
// reports "not newly added" on the second call.
func TestInterner_RoundTrip(t *testing.T) {
	tr := builtin.New()
	k1, added1 := tr.Interner.Intern([]string{"a", "b"})
	require.True(t, added1)
	k2, added2 := tr.Interner.Intern([]string{"a", "b"})
	require.False(t, added2)
	require.Equal(t, k1, k2)
}

// AddModule reports true only the first time a key is registered
// (spec.md §9 Open Questions).
func TestTree_AddModuleReturnsTrueOnlyOnce(t *testing.T) {
	tr := builtin.New()
	k, _ := tr.Interner.Intern([]string{"q"})
	require.True(t, tr.AddModule(k))
	require.False(t, tr.AddModule(k))
}
