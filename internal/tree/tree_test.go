package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/tree"
)

func TestAddModule_FirstAddedTrueThenFalse(t *testing.T) {
	tr := tree.New()
	k, _ := tr.Interner.Intern([]string{"somelib"})

	require.True(t, tr.AddModule(k))
	require.False(t, tr.AddModule(k))
	require.True(t, tr.HasModule(k))
}

func TestHasModule_AbsentKey(t *testing.T) {
	tr := tree.New()
	require.False(t, tr.HasModule(0))
}

func TestAddVar_CollisionReturnsFalse(t *testing.T) {
	tr := tree.New()
	k, _ := tr.Interner.Intern([]string{"v"})

	require.True(t, tr.AddVar(k, ast.AccessNone, &ast.UserDefinedVariable{}))
	require.False(t, tr.AddVar(k, ast.AccessNone, &ast.UserDefinedVariable{}))

	info, ok := tr.VarInfo(k)
	require.True(t, ok)
	require.Equal(t, ast.AccessNone, info.Access)
}

func TestUncompiledVarKeys_DeclarationOrder(t *testing.T) {
	tr := tree.New()
	kv, _ := tr.Interner.Intern([]string{"v"})
	kf, _ := tr.Interner.Intern([]string{"f"})
	kg, _ := tr.Interner.Intern([]string{"g"})

	tr.AddVar(kv, ast.AccessNone, &ast.UserDefinedVariable{})
	tr.AddVar(kf, ast.AccessNone, &ast.FunctionVariable{})
	tr.AddVar(kg, ast.AccessNone, &ast.FunctionVariable{})

	keys := tr.UncompiledVarKeys()
	require.Equal(t, []int{int(kv), int(kf), int(kg)}, []int{int(keys[0]), int(keys[1]), int(keys[2])})
}

func TestVariableInfo_EffectiveAccess_PlainVariable(t *testing.T) {
	tr := tree.New()
	k, _ := tr.Interner.Intern([]string{"v"})
	tr.AddVar(k, ast.AccessPrivate, &ast.UserDefinedVariable{})

	info, _ := tr.VarInfo(k)
	require.Equal(t, ast.AccessPrivate, info.EffectiveAccess(tr))
}

func TestVariableInfo_EffectiveAccess_ConstructorWithKnownDatatype(t *testing.T) {
	tr := tree.New()
	dtKey, _ := tr.Interner.Intern([]string{"Option"})
	tr.AddTypeVar(dtKey, ast.AccessPrivate, &ast.DatatypeVariable{})

	ctorKey, _ := tr.Interner.Intern([]string{"Some"})
	tr.AddVar(ctorKey, ast.AccessNone, &ast.ConstructorVariable{Ctor: &ast.ConstructorDef{Name: "Some"}})
	info, _ := tr.VarInfo(ctorKey)
	info.SetCtorDatatypeKey(dtKey)

	require.Equal(t, ast.AccessPrivate, info.EffectiveAccess(tr), "private datatype makes its constructors private")
}

func TestVariableInfo_EffectiveAccess_ConstructorPendingDatatype(t *testing.T) {
	tr := tree.New()
	dtfKey, _ := tr.Interner.Intern([]string{"m", "Tree"})
	tr.AddTypeFun(dtfKey, ast.AccessPrivate, &ast.DatatypeFunction{Arity: 1})

	ctorKey, _ := tr.Interner.Intern([]string{"m", "Leaf"})
	tr.AddVar(ctorKey, ast.AccessNone, &ast.ConstructorVariable{Ctor: &ast.ConstructorDef{Name: "Leaf"}})
	info, _ := tr.VarInfo(ctorKey)
	info.HasDatatypeFun = true
	info.SetCtorPendingDatatype([]string{"m", "Tree"})

	require.Equal(t, ast.AccessPrivate, info.EffectiveAccess(tr))
	// Second call hits the cached path.
	require.Equal(t, ast.AccessPrivate, info.EffectiveAccess(tr))
}

func TestTypeFunInfo_RoundTrip(t *testing.T) {
	tr := tree.New()
	k, _ := tr.Interner.Intern([]string{"stdlib", "Array"})
	require.True(t, tr.AddTypeFun(k, ast.AccessNone, &ast.BuiltinTypeFunction{Arity: 1, Tag: ast.BuiltinArray}))
	require.False(t, tr.AddTypeFun(k, ast.AccessNone, &ast.BuiltinTypeFunction{Arity: 1, Tag: ast.BuiltinArray}))

	info, ok := tr.TypeFunInfo(k)
	require.True(t, ok)
	require.Equal(t, 1, len(tr.UncompiledTypeFunKeys()))
	require.Equal(t, ast.BuiltinArray, info.TypeFun.(*ast.BuiltinTypeFunction).Tag)
}

func TestNew_AssignsUnitID(t *testing.T) {
	tr := tree.New()
	require.NotEmpty(t, tr.UnitID)
}
