package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/ident"
	"github.com/vesper-lang/vesper/internal/tree"
)

// instanceRef builds the absolute, already-qualified reference an
// instance-attachment definition resolves its parent template against:
// current module + Name, looked up directly (no local/import/predef
// search), matching the AbsoluteIdentifier overload
// resolve_var_ident/resolve_type_fun_ident use for instance idents in
// resolve_idents_from_defs.
func instanceRef(c *Context, name string, pos ast.Pos) *ast.IdentRef {
	path := appendPath(c.currentModule, []string{name})
	return ast.NewAbsoluteIdentRef(path, pos)
}

// moduleDefPath computes a ModuleDefinition's full absolute path,
// matching declareModule's own computation (spec.md §4.4).
func moduleDefPath(c *Context, d *ast.ModuleDefinition) ident.Absolute {
	if d.Absolute {
		return ident.Absolute(d.Path)
	}
	return appendPath(c.currentModule, d.Path)
}

// resolveImport resolves an ImportDefinition's module reference and, on
// success, pushes it onto the innermost import frame.
func resolveImport(c *Context, d *ast.ImportDefinition) bool {
	if !ResolveModuleRef(c, d.Module) {
		return false
	}
	c.AddImport(c.Tree.Interner.LookupSegments(d.Module.Key))
	return true
}

// ResolveAliasDefs is the alias-only pre-pass (C6a): it resolves every
// AliasVariable's Target so the full pass can chase alias chains to
// their non-alias Variable via resolveNonAliasVar. Everything other
// than imports, nested modules, and plain VariableDefinitions is a
// no-op here (grounded on resolve_idents_from_alias_defs).
func ResolveAliasDefs(c *Context, defs []ast.Definition) bool {
	ok := true
	for _, def := range defs {
		switch d := def.(type) {
		case *ast.ImportDefinition:
			ok = resolveImport(c, d) && ok
		case *ast.ModuleDefinition:
			full := moduleDefPath(c, d)
			c.PushImportFrame()
			var inner bool
			c.WithModule(full, func() {
				inner = ResolveAliasDefs(c, d.Defs)
			})
			c.PopImportFrame()
			ok = inner && ok
		case *ast.VariableDefinition:
			ok = resolveAliasVar(c, d.Body, d.Pos) && ok
		default:
			// Every other definition kind introduces no alias to chase
			// in this pre-pass.
		}
	}
	return ok
}

// ResolveDefs is the full resolution pass (C6): every identifier
// occurrence reachable from defs is resolved, and every instance
// attachment is appended to its template's tree.Instances (grounded on
// resolve_idents_from_defs).
func ResolveDefs(c *Context, defs []ast.Definition) bool {
	ok := true
	for _, def := range defs {
		switch d := def.(type) {
		case *ast.ImportDefinition:
			ok = resolveImport(c, d) && ok
		case *ast.ModuleDefinition:
			full := moduleDefPath(c, d)
			c.PushImportFrame()
			var inner bool
			c.WithModule(full, func() {
				inner = ResolveDefs(c, d.Defs)
			})
			c.PopImportFrame()
			ok = inner && ok
		case *ast.VariableDefinition:
			ok = resolveVar(c, d.Body, d.Pos) && ok
		case *ast.VariableInstanceDefinition:
			ref := instanceRef(c, d.Name, d.Pos)
			attached := ResolveVarRef(c, ref)
			if attached {
				if vi, found := c.Tree.VarInfo(ref.Key); found {
					vi.Instances = append(vi.Instances, tree.Instance{Variable: d.Body, Pos: d.Pos})
				}
			}
			ok = resolveVar(c, d.Body, d.Pos) && attached && ok
		case *ast.FunctionDefinition:
			ok = resolveFun(c, d.Fn, d.Pos) && ok
		case *ast.FunctionInstanceDefinition:
			ref := instanceRef(c, d.Name, d.Pos)
			attached := ResolveVarRef(c, ref)
			if attached {
				if vi, found := c.Tree.VarInfo(ref.Key); found {
					vi.Instances = append(vi.Instances, tree.Instance{Variable: &ast.FunctionVariable{Fn: d.Fn}, Pos: d.Pos})
				}
			}
			ok = resolveFun(c, d.Fn, d.Pos) && attached && ok
		case *ast.TypeVariableDefinition:
			ok = resolveTypeVar(c, d.TyVar, d.Pos) && ok
		case *ast.TypeFunctionDefinition:
			ok = resolveTypeFun(c, d.TyFun, d.Pos) && ok
		case *ast.TypeFunctionInstanceDefinition:
			ref := instanceRef(c, d.Name, d.Pos)
			attached := ResolveTypeFunRef(c, ref)
			if attached {
				if tfi, found := c.Tree.TypeFunInfo(ref.Key); found {
					tfi.Instances = append(tfi.Instances, tree.Instance{TypeFun: d.TyFun, Pos: d.Pos})
				}
			}
			ok = resolveTypeFunInst(c, d.TyFun, d.Pos) && attached && ok
		default:
			c.Errors.Internal(def.Position(), "unknown definition class")
			ok = false
		}
	}
	return ok
}
