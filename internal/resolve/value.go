package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
)

// resolveValue walks a compile-time-constant value (a named field's
// default, or any other Value occurrence), resolving every identifier
// it references. Value never opens a local or type-parameter scope of
// its own (spec.md §4.5.3, grounded on resolve_idents_from_value).
func resolveValue(c *Context, v ast.Value) bool {
	switch val := v.(type) {
	case *ast.LiteralVal:
		return true
	case *ast.IdentVal:
		return ResolveVarRef(c, val.Ref)
	case *ast.TupleVal:
		ok := true
		for _, el := range val.Elements {
			ok = resolveValue(c, el) && ok
		}
		return ok
	case *ast.ListVal:
		ok := true
		for _, el := range val.Elements {
			ok = resolveValue(c, el) && ok
		}
		return ok
	case *ast.ConstructorVal:
		return resolveConstructorVal(c, val)
	default:
		c.Errors.Internal(v.Position(), "unknown value class")
		return false
	}
}

// resolveConstructorVal mirrors resolveConstructorAppExpr's shape check
// (grounded on the VariableConstructorValue/UnnamedFieldConstructorValue/
// NamedFieldConstructorValue arms of resolve_idents_from_value).
func resolveConstructorVal(c *Context, v *ast.ConstructorVal) bool {
	ok := ResolveVarRef(c, v.Ctor)
	var ctorVar *ast.ConstructorVariable
	if ok {
		val, found := resolveNonAliasVar(c, v.Ctor)
		if !found {
			ok = false
		} else if cv, isCtor := val.(*ast.ConstructorVariable); isCtor {
			ctorVar = cv
		} else {
			c.Errors.Addf(v.Pos, errs.RSV005, "variable %s isn't constructor", refAbsString(c, v.Ctor))
			ok = false
		}
	}

	if ctorVar == nil {
		ok = false
		for _, fv := range v.PositionalArgs {
			ok = resolveValue(c, fv) && ok
		}
		ok = resolveValueNamedFieldPairs(c, v.NamedArgs, nil, "", false) && ok
		return ok
	}

	if v.NamedArgs != nil {
		var indices map[string]int
		name := refAbsString(c, v.Ctor)
		if ctorVar.Ctor.Kind != ast.ConstructorNamedFields {
			c.Errors.Addf(v.Pos, errs.RSV005, "constructor %s isn't function constructor with named fields", name)
			ok = false
		} else {
			indices = ctorVar.Ctor.FieldIndices
			arity, _ := ctorArity(ctorVar.Ctor)
			if len(v.NamedArgs) < arity {
				c.Errors.Addf(v.Pos, errs.RSV006, "too few fields of constructor %s isn't function constructor", name)
				ok = false
			} else if len(v.NamedArgs) > arity {
				c.Errors.Addf(v.Pos, errs.RSV006, "too many fields of constructor %s isn't function constructor", name)
				ok = false
			}
		}
		ok = resolveValueNamedFieldPairs(c, v.NamedArgs, indices, name, indices != nil) && ok
		return ok
	}

	name := refAbsString(c, v.Ctor)
	arity, isFn := ctorArity(ctorVar.Ctor)
	if !isFn {
		if len(v.PositionalArgs) > 0 {
			c.Errors.Addf(v.Pos, errs.RSV005, "constructor %s isn't function constructor", name)
			ok = false
		}
	} else if len(v.PositionalArgs) < arity {
		c.Errors.Addf(v.Pos, errs.RSV006, "too few fields of constructor %s isn't function constructor", name)
		ok = false
	} else if len(v.PositionalArgs) > arity {
		c.Errors.Addf(v.Pos, errs.RSV006, "too many fields of constructor %s isn't function constructor", name)
		ok = false
	}
	for _, fv := range v.PositionalArgs {
		ok = resolveValue(c, fv) && ok
	}
	return ok
}

func resolveValueNamedFieldPairs(c *Context, pairs []*ast.FieldVal, indices map[string]int, ctorName string, haveCtorName bool) bool {
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
		ok = resolveValue(c, p.Value) && ok
	}
	return ok
}
