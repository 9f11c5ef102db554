package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
)

// resolveVar resolves a variable-namespace definition's body in the
// full pass (grounded on resolve_idents_from_var). AliasVariable is a
// no-op here: its Target was already chased by the alias pre-pass
// (resolveAliasVar).
func resolveVar(c *Context, v ast.Variable, pos ast.Pos) bool {
	switch vv := v.(type) {
	case *ast.UserDefinedVariable:
		ok := true
		if len(vv.InstTypeParams) > 0 {
			c.BeginTemplate(vv.InstTypeParams)
		}
		if vv.TypeExpr != nil {
			ok = resolveTypeExpr(c, vv.TypeExpr, true) && ok
		}
		if vv.Value != nil {
			ok = resolveExpr(c, vv.Value) && ok
		}
		if len(vv.InstTypeParams) > 0 {
			c.EndTemplate()
		}
		return ok
	case *ast.ExternalVariable:
		return resolveTypeExpr(c, vv.TypeExpr, false)
	case *ast.AliasVariable:
		return true
	default:
		c.Errors.Internal(pos, "unknown variable class")
		return false
	}
}

// resolveFun resolves a function-namespace definition's body in the
// full pass (grounded on resolve_idents_from_fun). Annotations are
// checked whatever the function's FuncMod; the function's own FuncMod
// is not consulted here, and no closure limit is pushed for the
// top-level function frame (only a primitive LambdaExpr pushes one).
func resolveFun(c *Context, f ast.Function, pos ast.Pos) bool {
	switch ff := f.(type) {
	case *ast.UserDefinedFunction:
		ok := true
		if len(ff.InstTypeParams) > 0 {
			c.BeginTemplate(ff.InstTypeParams)
		}
		ok = checkAnnotations(ff.Annotations, pos, c.Errors) && ok
		ok = resolveArgs(c, ff.Args, true) && ok
		if ff.ResultType != nil {
			ok = resolveTypeExpr(c, ff.ResultType, true) && ok
		}
		if ff.Body != nil {
			ok = resolveExpr(c, ff.Body) && ok
		}
		popArgsFrame(c)
		if len(ff.InstTypeParams) > 0 {
			c.EndTemplate()
		}
		return ok
	case *ast.ExternalFunction:
		ok := resolveArgs(c, ff.Args, true)
		if ff.ResultType != nil {
			ok = resolveTypeExpr(c, ff.ResultType, true) && ok
		}
		popArgsFrame(c)
		return ok
	case *ast.NativeFunction:
		ok := resolveArgs(c, ff.Args, true)
		popArgsFrame(c)
		return ok
	default:
		c.Errors.Internal(pos, "unknown function class")
		return false
	}
}

// resolveTypeVar resolves a type-variable-namespace definition's body
// (grounded on resolve_idents_from_type_var). None of these kinds are
// templated, so no type-parameter scope is opened.
func resolveTypeVar(c *Context, tv ast.TypeVariable, pos ast.Pos) bool {
	switch v := tv.(type) {
	case *ast.TypeSynonymVariable:
		return resolveTypeExpr(c, v.TypeExpr, false)
	case *ast.DatatypeVariable:
		return resolveDatatype(c, v.Datatype, pos)
	case *ast.BuiltinTypeVariable:
		return true
	default:
		c.Errors.Internal(pos, "unknown type variable class")
		return false
	}
}

// resolveTypeFun resolves a type-function-namespace definition's body:
// its own argument list and instance-parameter list open the template
// scope its body is then resolved against (grounded on
// resolve_idents_from_type_fun).
func resolveTypeFun(c *Context, tf ast.TypeFunction, pos ast.Pos) bool {
	switch f := tf.(type) {
	case *ast.TypeSynonymFunction:
		c.BeginTemplate(nil)
		ok := resolveTypeArgs(c, f.TypeArgs, pos)
		// InstTypeParams, when present, must name a subset of the args
		// just declared — validated, not added afresh (grounded on
		// resolve_idents_from_type_params's default can_add_type_params
		// = false).
		ok = resolveTypeParams(c, f.InstTypeParams, pos, false) && ok
		if f.Body != nil {
			ok = resolveTypeExpr(c, f.Body, false) && ok
		}
		c.EndTemplate()
		return ok
	case *ast.DatatypeFunction:
		c.BeginTemplate(nil)
		ok := resolveTypeArgs(c, f.TypeArgs, pos)
		ok = resolveTypeParams(c, f.InstTypeParams, pos, false) && ok
		ok = resolveDatatype(c, f.Body, pos) && ok
		c.EndTemplate()
		return ok
	default:
		c.Errors.Internal(pos, "unknown type function class")
		return false
	}
}

// resolveTypeFunInst resolves a type-function template instance's own
// argument list and body (grounded on resolve_idents_from_type_fun_inst).
func resolveTypeFunInst(c *Context, inst ast.TypeFunction, pos ast.Pos) bool {
	switch i := inst.(type) {
	case *ast.TypeSynonymFunctionInstance:
		c.BeginTemplate(nil)
		ok := true
		for _, a := range i.TypeArgs {
			c.AllocateTypeParam(a)
		}
		if i.Body != nil {
			ok = resolveTypeExpr(c, i.Body, true) && ok
		}
		c.EndTemplate()
		return ok
	case *ast.DatatypeFunctionInstance:
		c.BeginTemplate(nil)
		ok := true
		for _, a := range i.TypeArgs {
			c.AllocateTypeParam(a)
		}
		ok = resolveDatatype(c, i.Body, pos) && ok
		c.EndTemplate()
		return ok
	default:
		c.Errors.Internal(pos, "unknown type function instance class")
		return false
	}
}

// resolveAliasVar is the alias-only pre-pass: it resolves only
// AliasVariable definitions (so every alias's Target is available
// before the full pass needs to chase it via resolveNonAliasVar).
// UserDefinedVariable and ExternalVariable are no-ops here; the full
// pass resolves them (grounded on resolve_idents_from_alias_var).
func resolveAliasVar(c *Context, v ast.Variable, pos ast.Pos) bool {
	alias, ok := v.(*ast.AliasVariable)
	if !ok {
		return true
	}
	success := true
	if len(alias.InstTypeParams) > 0 {
		c.BeginTemplate(alias.InstTypeParams)
	}
	if alias.TypeExpr != nil {
		success = resolveTypeExpr(c, alias.TypeExpr, true) && success
	}
	success = ResolveVarRef(c, alias.Target) && success
	if len(alias.InstTypeParams) > 0 {
		c.EndTemplate()
	}
	return success
}
