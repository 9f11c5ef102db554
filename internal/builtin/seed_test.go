package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/builtin"
	"github.com/vesper-lang/vesper/internal/tree"
)

func TestSeed_RootAndStdlibModules(t *testing.T) {
	tr := tree.New()
	require.NoError(t, builtin.Seed(tr))

	rootKey, ok := tr.Interner.LookupKey(nil)
	require.True(t, ok)
	require.True(t, tr.HasModule(rootKey))

	stdlibKey, ok := tr.Interner.LookupKey([]string{"stdlib"})
	require.True(t, ok)
	require.True(t, tr.HasModule(stdlibKey))
}

func TestSeed_PrimitiveTypes(t *testing.T) {
	tr := builtin.New()

	for _, name := range []string{"Char", "WChar", "Int8", "Int16", "Int32", "Int64", "Float", "Double"} {
		key, ok := tr.Interner.LookupKey([]string{"stdlib", name})
		require.True(t, ok, name)

		info, ok := tr.TypeVarInfo(key)
		require.True(t, ok, name)
		require.Equal(t, ast.AccessNone, info.Access)

		bv, ok := info.TypeVar.(*ast.BuiltinTypeVariable)
		require.True(t, ok, name)
		require.Equal(t, name, bv.Tag.String())
	}
}

func TestSeed_PrimitiveTemplates(t *testing.T) {
	tr := builtin.New()

	for _, name := range []string{"Array", "UniqueArray"} {
		key, ok := tr.Interner.LookupKey([]string{"stdlib", name})
		require.True(t, ok, name)

		info, ok := tr.TypeFunInfo(key)
		require.True(t, ok, name)

		bf, ok := info.TypeFun.(*ast.BuiltinTypeFunction)
		require.True(t, ok, name)
		require.Equal(t, 1, bf.Arity)
		require.Equal(t, name, bf.Tag.String())
	}
}

func TestSeed_EmptyTreeHoldsOnlyBuiltins(t *testing.T) {
	tr := builtin.New()

	require.Len(t, tr.UncompiledVarKeys(), 0)
	require.Len(t, tr.UncompiledTypeVarKeys(), 8)
	require.Len(t, tr.UncompiledTypeFunKeys(), 2)
}
