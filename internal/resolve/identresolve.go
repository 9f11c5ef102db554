package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/ident"
)

// lookupFunc reports whether key exists in one definition-tree
// namespace and, if so, its access modifier.
type lookupFunc func(key ident.Key) (access ast.AccessModifier, found bool)

// appendPath returns module with segments appended, without aliasing
// module's backing array.
func appendPath(module ident.Absolute, segments []string) ident.Absolute {
	out := make(ident.Absolute, 0, len(module)+len(segments))
	out = append(out, module...)
	out = append(out, segments...)
	return out
}

func moduleEquals(a, b ident.Absolute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// lookupAt interns path (if already known), checks lookup, and applies
// the privacy rule: a private entry is visible only when its declaring
// module (path minus its last segment) is exactly the context's
// current module (spec.md §4.5.1's set_key_ident).
func lookupAt(c *Context, path ident.Absolute, lookup lookupFunc) (key ident.Key, ok bool, isPrivate bool) {
	k, interned := c.Tree.Interner.LookupKey(path)
	if !interned {
		return 0, false, false
	}
	access, found := lookup(k)
	if !found {
		return 0, false, false
	}
	if access == ast.AccessPrivate {
		var declModule ident.Absolute
		if len(path) > 0 {
			declModule = path[:len(path)-1]
		}
		if !moduleEquals(declModule, c.currentModule) {
			return 0, false, true
		}
	}
	return k, true, false
}

// resolveRef implements spec.md §4.5.1's full priority order for one
// namespace: a single-segment local variable first (when allowLocal),
// then the current module, then each imported module (innermost frame
// first, and within a frame, most-recently-imported first), then the
// predef fallback. Exactly one error is recorded on failure — "is
// private" if some candidate existed but was not visible, else "is
// undefined" — using noun as the diagnostic's subject word ("variable",
// "type", "type template", "module").
func resolveRef(c *Context, ref *ast.IdentRef, lookup lookupFunc, noun string, allowLocal bool) bool {
	if ref.Absolute {
		path := ident.Absolute(ref.Segments)
		if k, ok, isPrivate := lookupAt(c, path, lookup); ok {
			ref.SetKey(k)
			return true
		} else if isPrivate {
			c.Errors.Addf(ref.Pos, errs.RSV004, "%s %s is private", noun, path.String())
			return false
		}
		c.Errors.Addf(ref.Pos, errs.RSV003, "%s %s is undefined", noun, path.String())
		return false
	}

	if allowLocal && len(ref.Segments) == 1 {
		if idx, ok := c.LookupLocal(ref.Segments[0]); ok {
			ref.SetLocal(idx)
			return true
		}
	}

	var privatePath ident.Absolute
	candidate := appendPath(c.currentModule, ref.Segments)
	if k, ok, isPrivate := lookupAt(c, candidate, lookup); ok {
		ref.SetKey(k)
		return true
	} else if isPrivate {
		privatePath = candidate
	}

	for _, m := range c.ImportedModules() {
		candidate := appendPath(m, ref.Segments)
		if k, ok, isPrivate := lookupAt(c, candidate, lookup); ok {
			ref.SetKey(k)
			return true
		} else if isPrivate && privatePath == nil {
			privatePath = candidate
		}
	}

	if k, ok, isPrivate := lookupAt(c, appendPath(predefModule, ref.Segments), lookup); ok {
		ref.SetKey(k)
		return true
	} else if isPrivate {
		c.Errors.Addf(ref.Pos, errs.RSV004, "%s %s is private", noun, appendPath(predefModule, ref.Segments).String())
		return false
	}

	if privatePath != nil {
		c.Errors.Addf(ref.Pos, errs.RSV004, "%s %s is private", noun, privatePath.String())
		return false
	}

	rel := ident.Absolute(ref.Segments)
	c.Errors.Addf(ref.Pos, errs.RSV003, "%s %s is undefined", noun, rel.String())
	return false
}

// varLookup reads the variables namespace, applying the lazy
// constructor-access resolution (tree.VariableInfo.EffectiveAccess)
// spec.md §9's AccessState model describes.
func varLookup(c *Context) lookupFunc {
	return func(key ident.Key) (ast.AccessModifier, bool) {
		vi, ok := c.Tree.VarInfo(key)
		if !ok {
			return ast.AccessNone, false
		}
		return vi.EffectiveAccess(c.Tree), true
	}
}

func typeVarLookup(c *Context) lookupFunc {
	return func(key ident.Key) (ast.AccessModifier, bool) {
		tv, ok := c.Tree.TypeVarInfo(key)
		if !ok {
			return ast.AccessNone, false
		}
		return tv.Access, true
	}
}

func typeFunLookup(c *Context) lookupFunc {
	return func(key ident.Key) (ast.AccessModifier, bool) {
		tf, ok := c.Tree.TypeFunInfo(key)
		if !ok {
			return ast.AccessNone, false
		}
		return tf.Access, true
	}
}

// moduleLookup reads the modules namespace. Modules carry no access
// modifier, so privacy never applies (spec.md §4.5.1's
// resolve_module_ident never installs a privacy branch).
func moduleLookup(c *Context) lookupFunc {
	return func(key ident.Key) (ast.AccessModifier, bool) {
		return ast.AccessNone, c.Tree.HasModule(key)
	}
}

// ResolveVarRef resolves ref against the variables namespace, trying a
// local-variable match first.
func ResolveVarRef(c *Context, ref *ast.IdentRef) bool {
	return resolveRef(c, ref, varLookup(c), "variable", true)
}

// ResolveTypeVarRef resolves ref against the type-variables namespace.
// Type variables are never local, so the local-variable shortcut never
// applies.
func ResolveTypeVarRef(c *Context, ref *ast.IdentRef) bool {
	return resolveRef(c, ref, typeVarLookup(c), "type", false)
}

// ResolveTypeFunRef resolves ref against the type-functions namespace.
func ResolveTypeFunRef(c *Context, ref *ast.IdentRef) bool {
	return resolveRef(c, ref, typeFunLookup(c), "type template", false)
}

// ResolveModuleRef resolves ref against the modules namespace (used by
// `import`).
func ResolveModuleRef(c *Context, ref *ast.IdentRef) bool {
	return resolveRef(c, ref, moduleLookup(c), "module", false)
}
