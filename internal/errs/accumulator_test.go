package errs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
)

func TestAccumulator_EmptyIsOk(t *testing.T) {
	a := errs.NewAccumulator()
	require.True(t, a.Ok())
	require.False(t, a.HasErrors())
	require.Empty(t, a.Errors())
}

func TestAccumulator_AddFlipsOk(t *testing.T) {
	a := errs.NewAccumulator()
	a.Add(ast.Pos{File: "a.ves", Line: 1, Column: 1}, errs.RSV003, "variable .a.v is undefined")

	require.False(t, a.Ok())
	require.Len(t, a.Errors(), 1)
	require.Equal(t, errs.RSV003, a.Errors()[0].Code)
}

func TestAccumulator_Addf(t *testing.T) {
	a := errs.NewAccumulator()
	a.Addf(ast.Pos{}, errs.RSV001, "variable %s is already defined", ".m.v")

	require.Equal(t, "variable .m.v is already defined", a.Errors()[0].Message)
}

func TestAccumulator_Internal_PrefixesMessage(t *testing.T) {
	a := errs.NewAccumulator()
	a.Internal(ast.Pos{}, "unexpected expression variant")

	require.Equal(t, errs.RSV011, a.Errors()[0].Code)
	require.Contains(t, a.Errors()[0].Message, "internal error:")
}

func TestAccumulator_Merge(t *testing.T) {
	a := errs.NewAccumulator()
	b := errs.NewAccumulator()
	a.Add(ast.Pos{}, errs.RSV003, "first")
	b.Add(ast.Pos{}, errs.RSV004, "second")

	a.Merge(b)
	require.Len(t, a.Errors(), 2)
	require.Equal(t, "first", a.Errors()[0].Message)
	require.Equal(t, "second", a.Errors()[1].Message)
}

func TestLookup_KnownAndUnknownCode(t *testing.T) {
	info, ok := errs.Lookup(errs.RSV008)
	require.True(t, ok)
	require.Equal(t, errs.CategoryAliasCycle, info.Category)

	_, ok = errs.Lookup("RSV999")
	require.False(t, ok)
}
