package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
)

// resolveDatatype resolves every constructor's field types. The
// owning-datatype key each constructor needs for its AccessState was
// already stamped by Declare; this pass only resolves field type
// expressions and field-name uniqueness.
func resolveDatatype(c *Context, dt ast.Datatype, pos ast.Pos) bool {
	var ctors []*ast.ConstructorDef
	switch d := dt.(type) {
	case *ast.NonUniqueDatatype:
		ctors = d.Constructors
	case *ast.UniqueDatatype:
		ctors = d.Constructors
	default:
		c.Errors.Internal(pos, "unknown datatype class")
		return false
	}
	ok := true
	for _, ctor := range ctors {
		ok = resolveConstr(c, ctor) && ok
	}
	return ok
}

func resolveConstr(c *Context, ctor *ast.ConstructorDef) bool {
	switch ctor.Kind {
	case ast.ConstructorVariableKind:
		return true
	case ast.ConstructorUnnamedFields:
		ok := checkAnnotations(ctor.Annotations, ctor.Pos, c.Errors)
		for _, ft := range ctor.UnnamedFields {
			ok = resolveTypeExpr(c, ft, false) && ok
		}
		return ok
	case ast.ConstructorNamedFields:
		ok := checkAnnotations(ctor.Annotations, ctor.Pos, c.Errors)
		indices := make(map[string]int, len(ctor.NamedFields))
		for i, field := range ctor.NamedFields {
			if _, dup := indices[field.Name]; dup {
				c.Errors.Addf(field.Pos, errs.RSV002, "field %s is already defined at constructor %s", field.Name, appendPath(c.currentModule, []string{ctor.Name}).String())
				ok = false
			} else {
				indices[field.Name] = i
			}
			ok = resolveTypeExpr(c, field.Type, false) && ok
			if field.Default != nil {
				ok = resolveValue(c, field.Default) && ok
			}
		}
		ctor.FieldIndices = indices
		return ok
	default:
		c.Errors.Internal(ctor.Pos, "unknown constructor kind")
		return false
	}
}
