package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/builtin"
	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/ident"
	"github.com/vesper-lang/vesper/internal/tree"
)

// Resolve runs the whole three-pass symbol-resolution pipeline over
// sources against a freshly built, builtin-seeded tree: the declaration
// pass (C5) over every source, then an alias-only pre-pass (C6a) and
// the full resolution pass (C6) over every source, each under its own
// fresh top-level import frame (grounded on Resolver::resolve,
// resolver.cpp lines 1765-1781).
func Resolve(sources []*ast.Source) (*tree.Tree, *errs.Accumulator) {
	t := builtin.New()
	errAcc := errs.NewAccumulator()
	c := NewContext(t, errAcc, ident.Absolute{})

	DeclareRoot(c)
	for _, src := range sources {
		Declare(c, src.Defs)
	}

	for _, src := range sources {
		c.PushImportFrame()
		ResolveAliasDefs(c, src.Defs)
		c.PopImportFrame()
	}

	for _, src := range sources {
		c.PushImportFrame()
		ResolveDefs(c, src.Defs)
		c.PopImportFrame()
	}

	return t, errAcc
}
