package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
)

// resolvePattern walks a pattern tree, declaring every bound local
// variable and resolving every constructor reference it names (spec.md
// §4.5.3, grounded on resolve_idents_from_pattern).
func resolvePattern(c *Context, p ast.Pattern) bool {
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		return true
	case *ast.VariablePattern:
		if _, dup := c.DeclareLocal(pat.Name); dup {
			c.Errors.Addf(pat.Pos, errs.RSV002, "variable %s is already defined", pat.Name)
			return false
		}
		return true
	case *ast.LiteralPattern:
		return true
	case *ast.TuplePattern:
		ok := true
		for _, el := range pat.Elements {
			ok = resolvePattern(c, el) && ok
		}
		return ok
	case *ast.ConstructorPattern:
		return resolveConstructorPattern(c, pat)
	case *ast.AsPattern:
		ok := true
		if _, dup := c.DeclareLocal(pat.Name); dup {
			c.Errors.Addf(pat.Pos, errs.RSV002, "variable %s is already defined", pat.Name)
			ok = false
		}
		return resolvePattern(c, pat.Inner) && ok
	default:
		c.Errors.Internal(p.Position(), "unknown pattern class")
		return false
	}
}

// resolveConstructorPattern mirrors resolveConstructorAppExpr's shape
// check against the pattern's own field-arity/naming (grounded on the
// VariableConstructorPattern/UnnamedFieldConstructorPattern/
// NamedFieldConstructorPattern arms of resolve_idents_from_pattern).
// Every field pattern is resolved unconditionally — a field pattern may
// itself bind locals — regardless of whether the shape check above it
// succeeded.
func resolveConstructorPattern(c *Context, p *ast.ConstructorPattern) bool {
	ok := ResolveVarRef(c, p.Ctor)
	var ctorVar *ast.ConstructorVariable
	if ok {
		v, found := resolveNonAliasVar(c, p.Ctor)
		if !found {
			ok = false
		} else if cv, isCtor := v.(*ast.ConstructorVariable); isCtor {
			ctorVar = cv
		} else {
			c.Errors.Addf(p.Pos, errs.RSV005, "variable %s isn't constructor", refAbsString(c, p.Ctor))
			ok = false
		}
	}

	if ctorVar == nil {
		ok = false
		for _, fp := range p.PositionalArgs {
			ok = resolvePattern(c, fp) && ok
		}
		ok = resolvePatternNamedFieldPairs(c, p.NamedArgs, nil, "", false) && ok
		return ok
	}

	if p.NamedArgs != nil {
		var indices map[string]int
		name := refAbsString(c, p.Ctor)
		if ctorVar.Ctor.Kind != ast.ConstructorNamedFields {
			c.Errors.Addf(p.Pos, errs.RSV005, "constructor %s isn't function constructor with named fields", name)
			ok = false
		} else {
			indices = ctorVar.Ctor.FieldIndices
			arity, _ := ctorArity(ctorVar.Ctor)
			if len(p.NamedArgs) < arity {
				c.Errors.Addf(p.Pos, errs.RSV006, "too few fields of constructor %s isn't function constructor", name)
				ok = false
			} else if len(p.NamedArgs) > arity {
				c.Errors.Addf(p.Pos, errs.RSV006, "too many fields of constructor %s isn't function constructor", name)
				ok = false
			}
		}
		ok = resolvePatternNamedFieldPairs(c, p.NamedArgs, indices, name, indices != nil) && ok
		return ok
	}

	name := refAbsString(c, p.Ctor)
	arity, isFn := ctorArity(ctorVar.Ctor)
	if !isFn {
		// A nullary (VariableConstructor) pattern carries no field
		// patterns at all; original only checks kind, never arity, for
		// this shape.
		if len(p.PositionalArgs) > 0 {
			c.Errors.Addf(p.Pos, errs.RSV005, "constructor %s isn't function constructor", name)
			ok = false
		}
	} else if len(p.PositionalArgs) < arity {
		c.Errors.Addf(p.Pos, errs.RSV006, "too few fields of constructor %s isn't function constructor", name)
		ok = false
	} else if len(p.PositionalArgs) > arity {
		c.Errors.Addf(p.Pos, errs.RSV006, "too many fields of constructor %s isn't function constructor", name)
		ok = false
	}
	for _, fp := range p.PositionalArgs {
		ok = resolvePattern(c, fp) && ok
	}
	return ok
}

func resolvePatternNamedFieldPairs(c *Context, pairs []*ast.FieldPattern, indices map[string]int, ctorName string, haveCtorName bool) bool {
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
		ok = resolvePattern(c, p.Pattern) && ok
	}
	return ok
}
