package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
)

// resolveTypeExpr walks a type expression, resolving every TypeRefExpr
// against the type-variables namespace, every TypeApplicationExpr's
// head against the type-functions namespace, and every
// TypeParameterExpr against the open type-parameter scope. canAddParams
// permits a previously-unseen parameter name to allocate a fresh index
// rather than being treated as an error — used for a template's own
// argument-position occurrences (spec.md §4.5.5).
func resolveTypeExpr(c *Context, te ast.TypeExpr, canAddParams bool) bool {
	switch t := te.(type) {
	case *ast.TypeRefExpr:
		return ResolveTypeVarRef(c, t.Ident)
	case *ast.TypeApplicationExpr:
		ok := ResolveTypeFunRef(c, t.Ident)
		for _, a := range t.Args {
			ok = resolveTypeExpr(c, a, canAddParams) && ok
		}
		return ok
	case *ast.TypeArrowExpr:
		ok := true
		for _, p := range t.Params {
			ok = resolveTypeExpr(c, p, canAddParams) && ok
		}
		return resolveTypeExpr(c, t.Result, canAddParams) && ok
	case *ast.TypeTupleExpr:
		ok := true
		for _, e := range t.Elements {
			ok = resolveTypeExpr(c, e, canAddParams) && ok
		}
		return ok
	case *ast.UniquenessTypeExpr:
		return resolveTypeExpr(c, t.Inner, canAddParams)
	case *ast.TypeParameterExpr:
		return resolveTypeParamExpr(c, t, canAddParams)
	default:
		c.Errors.Internal(te.Position(), "unknown type expression class")
		return false
	}
}

func resolveTypeParamExpr(c *Context, t *ast.TypeParameterExpr, canAddParams bool) bool {
	if !c.InTemplate() {
		c.Errors.Add(t.Pos, errs.RSV009, "type parameters only can used in templates")
		return false
	}
	if idx, ok := c.TypeParamIndex(t.Name); ok {
		t.HasIndex = true
		t.Index = idx
		return true
	}
	if canAddParams {
		t.Index = c.AllocateTypeParam(t.Name)
		t.HasIndex = true
		return true
	}
	c.Errors.Addf(t.Pos, errs.RSV009, "type parameter %s is undefined", t.Name)
	return false
}

// resolveArgs declares each argument as a local in a fresh frame
// (detecting within-group duplicates) and resolves its type
// annotation, if any (spec.md §4.5.4).
func resolveArgs(c *Context, args []*ast.Arg, canAddParams bool) bool {
	ok := true
	c.PushLocalFrame()
	c.ClearLocalGroup()
	for _, arg := range args {
		if _, dup := c.DeclareLocal(arg.Name); dup {
			c.Errors.Addf(arg.Pos, errs.RSV002, "argument %s is already defined", arg.Name)
			ok = false
		}
		if arg.Type != nil {
			ok = resolveTypeExpr(c, arg.Type, canAddParams) && ok
		}
	}
	return ok
}

// popArgsFrame closes the frame resolveArgs opened. Kept separate so
// callers can resolve a body against the declared arguments before the
// frame closes.
func popArgsFrame(c *Context) { c.PopLocalFrame() }

// resolveTypeParams validates (or, when canAdd, declares) each name in
// params against the open type-parameter scope (spec.md §4.5.5).
func resolveTypeParams(c *Context, params []string, pos ast.Pos, canAdd bool) bool {
	ok := true
	for _, p := range params {
		if canAdd {
			if _, exists := c.TypeParamIndex(p); exists {
				c.Errors.Addf(pos, errs.RSV002, "type parameter %s is already defined", p)
				ok = false
				continue
			}
			c.AllocateTypeParam(p)
		} else {
			if _, exists := c.TypeParamIndex(p); !exists {
				c.Errors.Addf(pos, errs.RSV009, "type parameter %s is undefined", p)
				ok = false
			}
		}
	}
	return ok
}

// resolveTypeArgs declares every name in args as a fresh type parameter
// of the currently open template scope — used for a type function's own
// argument list (spec.md §4.5.5).
func resolveTypeArgs(c *Context, args []string, pos ast.Pos) bool {
	ok := true
	for _, a := range args {
		if _, exists := c.TypeParamIndex(a); exists {
			c.Errors.Addf(pos, errs.RSV002, "type argument %s is already defined", a)
			ok = false
			continue
		}
		c.AllocateTypeParam(a)
	}
	return ok
}

func checkAnnotations(annotations []ast.Annotation, pos ast.Pos, errAcc *errs.Accumulator) bool {
	ok := true
	var isEager, isLazy, isUnmemoized, isMemoized bool
	for _, a := range annotations {
		var tmpEager, tmpLazy, tmpUnmemoized, tmpMemoized bool
		switch a {
		case ast.AnnotationEager:
			tmpEager = true
		case ast.AnnotationLazy:
			tmpLazy = true
		case ast.AnnotationMemoized:
			tmpMemoized = true
		case ast.AnnotationUnmemoized:
			tmpUnmemoized = true
		case ast.AnnotationOnlyEager:
			tmpEager, tmpUnmemoized = true, true
		case ast.AnnotationOnlyLazy:
			tmpLazy, tmpUnmemoized = true, true
		case ast.AnnotationOnlyMemoized:
			tmpEager, tmpMemoized = true, true
		default:
			errAcc.Addf(pos, errs.RSV010, "annotation %s is unsupported", a)
			ok = false
			continue
		}
		isEager = isEager || tmpEager
		isLazy = isLazy || tmpLazy
		isUnmemoized = isUnmemoized || tmpUnmemoized
		isMemoized = isMemoized || tmpMemoized
		if (tmpEager || tmpLazy) && isEager && isLazy {
			errAcc.Add(pos, errs.RSV010, "function can't be eager and lazy")
			ok = false
		}
		if (tmpUnmemoized || tmpMemoized) && isUnmemoized && isMemoized {
			errAcc.Add(pos, errs.RSV010, "function can't be unmemoized and memoized")
			ok = false
		}
	}
	return ok
}
