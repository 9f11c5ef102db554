package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/ident"
)

// refAbsString renders an already-resolved global reference's full
// path, for use in diagnostics that name the identifier as originally
// written (not the alias currently being chased).
func refAbsString(c *Context, ref *ast.IdentRef) string {
	return c.Tree.Interner.LookupSegments(ref.Key).String()
}

// resolveNonAliasVar follows ref's AliasVariable chain to its first
// non-alias Variable, the same way a constructor occurrence (in an
// expression, pattern, or value) needs its target dereferenced before
// arity/kind checks can run. A templated alias with its own
// InstTypeParams is terminal: its target is a distinct instantiation,
// not interchangeable with this reference (spec.md §4.5.1 "Alias
// following"), matching get_non_alias_var.
//
// ref must already be resolved via ResolveVarRef to a global key; a
// local-variable resolution is never a constructor and fails here.
func resolveNonAliasVar(c *Context, ref *ast.IdentRef) (ast.Variable, bool) {
	if !ref.HasKey {
		c.Errors.Addf(ref.Pos, errs.RSV005, "variable %s isn't constructor", joinRefSegments(ref))
		return nil, false
	}

	name := refAbsString(c, ref)
	visited := map[ident.Key]bool{ref.Key: true}
	key := ref.Key
	vi, ok := c.Tree.VarInfo(key)
	if !ok {
		c.Errors.Internal(ref.Pos, "variable isn't found")
		return nil, false
	}
	v := vi.Variable
	for {
		alias, isAlias := v.(*ast.AliasVariable)
		if !isAlias {
			return v, true
		}
		if len(alias.InstTypeParams) > 0 {
			return v, true
		}
		if !alias.Target.HasKey {
			c.Errors.Addf(ref.Pos, errs.RSV003, "alias variable %s refers to undefined variable", name)
			return nil, false
		}
		key = alias.Target.Key
		if visited[key] {
			c.Errors.Addf(ref.Pos, errs.RSV008, "alias variable %s refers to alias cycle", name)
			return nil, false
		}
		visited[key] = true
		vi, ok = c.Tree.VarInfo(key)
		if !ok {
			c.Errors.Internal(ref.Pos, "variable isn't found")
			return nil, false
		}
		v = vi.Variable
	}
}

// joinRefSegments renders an unresolved reference's as-written segments
// for a diagnostic that must fire before resolution assigned it a key.
func joinRefSegments(ref *ast.IdentRef) string {
	out := ident.Absolute(ref.Segments).String()
	return out
}
