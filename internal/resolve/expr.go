package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
)

// resolveExpr walks an expression tree, resolving every identifier
// occurrence it reaches (spec.md §4.5.3, grounded on
// resolve_idents_from_expr).
func resolveExpr(c *Context, e ast.Expr) bool {
	switch expr := e.(type) {
	case *ast.IdentExpr:
		return ResolveVarRef(c, expr.Ref)
	case *ast.LiteralExpr:
		return true
	case *ast.LambdaExpr:
		return resolveLambdaExpr(c, expr)
	case *ast.ApplyExpr:
		ok := resolveExpr(c, expr.Fn)
		for _, a := range expr.Args {
			ok = resolveExpr(c, a) && ok
		}
		return ok
	case *ast.LetExpr:
		return resolveLetExpr(c, expr)
	case *ast.IfExpr:
		ok := resolveExpr(c, expr.Cond)
		ok = resolveExpr(c, expr.Then) && ok
		ok = resolveExpr(c, expr.Else) && ok
		return ok
	case *ast.MatchExpr:
		return resolveMatchExpr(c, expr)
	case *ast.TupleExpr:
		ok := true
		for _, el := range expr.Elements {
			ok = resolveExpr(c, el) && ok
		}
		return ok
	case *ast.ListExpr:
		ok := true
		for _, el := range expr.Elements {
			ok = resolveExpr(c, el) && ok
		}
		return ok
	case *ast.ConstructorAppExpr:
		return resolveConstructorAppExpr(c, expr)
	default:
		c.Errors.Internal(e.Position(), "unknown expression class")
		return false
	}
}

// resolveLambdaExpr opens a fresh local frame over the lambda's
// arguments, and a closure-limit boundary when FuncMod is
// FunctionPrimitive — a primitive lambda's body cannot see locals
// declared before it (spec.md §4.5.3, grounded on the LambdaValue arm of
// resolve_idents_from_literal_value).
func resolveLambdaExpr(c *Context, e *ast.LambdaExpr) bool {
	primitive := e.FuncMod == ast.FunctionPrimitive
	if primitive {
		c.PushClosureLimit()
	}
	ok := resolveArgs(c, e.Args, false)
	ok = resolveExpr(c, e.Body) && ok
	if primitive {
		c.PopClosureLimit()
	}
	popArgsFrame(c)
	return ok
}

// resolveLetExpr declares every binding name into one shared frame
// first, then resolves every binding's right-hand side and finally the
// body — letrec scoping, not sequential let (grounded on
// resolve_idents_from_binds).
func resolveLetExpr(c *Context, e *ast.LetExpr) bool {
	ok := true
	c.PushLocalFrame()
	c.ClearLocalGroup()
	for _, b := range e.Bindings {
		switch bind := b.(type) {
		case *ast.VariableBinding:
			if _, dup := c.DeclareLocal(bind.Name); dup {
				c.Errors.Addf(bind.Pos, errs.RSV002, "variable %s is already defined", bind.Name)
				ok = false
			}
		case *ast.TupleBinding:
			for _, name := range bind.Names {
				if name == "" {
					continue
				}
				if _, dup := c.DeclareLocal(name); dup {
					c.Errors.Addf(bind.Pos, errs.RSV002, "variable %s is already defined", name)
					ok = false
				}
			}
		default:
			c.Errors.Internal(b.Position(), "unknown binding class")
			ok = false
		}
	}
	for _, b := range e.Bindings {
		switch bind := b.(type) {
		case *ast.VariableBinding:
			ok = resolveExpr(c, bind.Value) && ok
		case *ast.TupleBinding:
			ok = resolveExpr(c, bind.Value) && ok
		}
	}
	ok = resolveExpr(c, e.Body) && ok
	c.PopLocalFrame()
	return ok
}

// resolveMatchExpr resolves the scrutinee, then each case in its own
// fresh local frame: a new binding group is started, the pattern is
// resolved (declaring its bound names), the group is cleared, then the
// case body is resolved against those names (grounded on the Match arm
// of resolve_idents_from_expr).
func resolveMatchExpr(c *Context, e *ast.MatchExpr) bool {
	ok := resolveExpr(c, e.Scrutinee)
	for _, cs := range e.Cases {
		c.PushLocalFrame()
		c.ClearLocalGroup()
		ok = resolvePattern(c, cs.Pattern) && ok
		c.ClearLocalGroup()
		ok = resolveExpr(c, cs.Body) && ok
		c.PopLocalFrame()
	}
	return ok
}

// ctorArity reports a constructor's field count and whether it is a
// function constructor (unnamed or named fields) at all — a
// VariableConstructor (nullary) is not, matching the
// Constructor/FunctionConstructor split in tree.hpp.
func ctorArity(ctor *ast.ConstructorDef) (int, bool) {
	switch ctor.Kind {
	case ast.ConstructorUnnamedFields:
		return len(ctor.UnnamedFields), true
	case ast.ConstructorNamedFields:
		return len(ctor.NamedFields), true
	default:
		return 0, false
	}
}

// resolveConstructorAppExpr resolves the constructor reference, follows
// its alias chain, and checks the application's shape (positional vs.
// named) against the constructor's actual kind and arity (grounded on
// the Application/NamedFieldConstructorApplication arms of
// resolve_idents_from_expr).
func resolveConstructorAppExpr(c *Context, e *ast.ConstructorAppExpr) bool {
	ok := ResolveVarRef(c, e.Ctor)
	var ctorVar *ast.ConstructorVariable
	if ok {
		v, found := resolveNonAliasVar(c, e.Ctor)
		if !found {
			ok = false
		} else if cv, isCtor := v.(*ast.ConstructorVariable); isCtor {
			ctorVar = cv
		} else {
			c.Errors.Addf(e.Pos, errs.RSV005, "variable %s isn't constructor", refAbsString(c, e.Ctor))
			ok = false
		}
	}

	if ctorVar == nil {
		ok = false
		// Still resolve nested expressions, matching the original's
		// unconditional trailing walk.
		for _, a := range e.PositionalArgs {
			ok = resolveExpr(c, a) && ok
		}
		ok = resolveExprNamedFieldPairs(c, e.NamedArgs, nil, "", false) && ok
		return ok
	}

	if e.NamedArgs != nil {
		var indices map[string]int
		name := refAbsString(c, e.Ctor)
		if ctorVar.Ctor.Kind != ast.ConstructorNamedFields {
			c.Errors.Addf(e.Pos, errs.RSV005, "constructor %s isn't function constructor with named fields", name)
			ok = false
		} else {
			indices = ctorVar.Ctor.FieldIndices
			arity, _ := ctorArity(ctorVar.Ctor)
			if len(e.NamedArgs) < arity {
				c.Errors.Addf(e.Pos, errs.RSV006, "too few fields of constructor %s isn't function constructor", name)
				ok = false
			} else if len(e.NamedArgs) > arity {
				c.Errors.Addf(e.Pos, errs.RSV006, "too many fields of constructor %s isn't function constructor", name)
				ok = false
			}
		}
		ok = resolveExprNamedFieldPairs(c, e.NamedArgs, indices, name, indices != nil) && ok
		return ok
	}

	name := refAbsString(c, e.Ctor)
	arity, isFn := ctorArity(ctorVar.Ctor)
	if !isFn {
		c.Errors.Addf(e.Pos, errs.RSV005, "constructor %s isn't function constructor", name)
		ok = false
	} else if len(e.PositionalArgs) < arity {
		c.Errors.Addf(e.Pos, errs.RSV006, "too few fields of constructor %s isn't function constructor", name)
		ok = false
	} else if len(e.PositionalArgs) > arity {
		c.Errors.Addf(e.Pos, errs.RSV006, "too many fields of constructor %s isn't function constructor", name)
		ok = false
	}
	for _, a := range e.PositionalArgs {
		ok = resolveExpr(c, a) && ok
	}
	return ok
}

// resolveExprNamedFieldPairs resolves each `name = expr` pair's
// expression unconditionally, while checking the field name against
// indices (unknown field / duplicate-use) whenever haveCtorName is set
// (grounded on resolve_idents_from_expr_named_field_pairs).
func resolveExprNamedFieldPairs(c *Context, pairs []*ast.FieldArg, indices map[string]int, ctorName string, haveCtorName bool) bool {
	ok := true
	used := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		if idx, found := indices[p.Name]; found {
			p.Index = idx
			p.HasIndex = true
			if used[idx] {
				c.Errors.Addf(p.Pos, errs.RSV007, "field %s is already specified", p.Name)
				ok = false
			} else {
				used[idx] = true
			}
		} else {
			if haveCtorName {
				c.Errors.Addf(p.Pos, errs.RSV007, "field %s is undefined at constructor %s", p.Name, ctorName)
			}
			ok = false
		}
		ok = resolveExpr(c, p.Value) && ok
	}
	return ok
}
