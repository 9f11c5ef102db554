package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/ident"
)

// DeclareRoot registers the root module (the empty identifier) if it is
// not already present. Seed already does this when builtins are seeded
// into the same tree, so this is a no-op in that case.
func DeclareRoot(c *Context) {
	k, _ := c.Tree.Interner.Intern(nil)
	c.Tree.AddModule(k)
}

// Declare runs the declaration pass (C5) over defs: every module,
// variable, function, type-variable, and type-function name they
// introduce is registered in the tree, and every datatype's
// constructors are flattened into the variables namespace. Imports and
// variable/function instance attachments introduce no names here; they
// are handled only by the later resolution pass. A type-function
// instance contributes only its datatype's constructors (spec.md §4.4).
func Declare(c *Context, defs []ast.Definition) {
	for _, def := range defs {
		declareOne(c, def)
	}
}

func declareOne(c *Context, def ast.Definition) {
	switch d := def.(type) {
	case *ast.ImportDefinition:
	case *ast.ModuleDefinition:
		declareModule(c, d)
	case *ast.VariableDefinition:
		declareVariable(c, d)
	case *ast.VariableInstanceDefinition:
	case *ast.FunctionDefinition:
		declareFunction(c, d)
	case *ast.FunctionInstanceDefinition:
	case *ast.TypeVariableDefinition:
		declareTypeVariable(c, d)
	case *ast.TypeFunctionDefinition:
		declareTypeFunction(c, d)
	case *ast.TypeFunctionInstanceDefinition:
		declareTypeFunctionInstance(c, d)
	default:
		c.Errors.Internal(def.Position(), "unknown definition class")
	}
}

func declareModule(c *Context, d *ast.ModuleDefinition) {
	var full ident.Absolute
	if d.Absolute {
		full = ident.Absolute(d.Path)
	} else {
		full = appendPath(c.currentModule, d.Path)
	}
	registerModulePrefixes(c, full)
	c.WithModule(full, func() {
		Declare(c, d.Defs)
	})
}

// registerModulePrefixes interns and registers every prefix of path,
// including the empty (root) prefix, as a module (spec.md §4.4).
func registerModulePrefixes(c *Context, path ident.Absolute) {
	for i := 0; i <= len(path); i++ {
		k, _ := c.Tree.Interner.Intern(path[:i])
		c.Tree.AddModule(k)
	}
}

func declareVariable(c *Context, d *ast.VariableDefinition) {
	path := appendPath(c.currentModule, []string{d.Name})
	key, _ := c.Tree.Interner.Intern(path)
	if !c.Tree.AddVar(key, d.Access, d.Body) {
		c.Errors.Addf(d.Pos, errs.RSV001, "%s %s is already defined", variableNoun(d.Body), path.String())
	}
}

func declareFunction(c *Context, d *ast.FunctionDefinition) {
	path := appendPath(c.currentModule, []string{d.Name})
	key, _ := c.Tree.Interner.Intern(path)
	fv := &ast.FunctionVariable{Fn: d.Fn}
	if !c.Tree.AddVar(key, d.Access, fv) {
		noun := "function"
		if isTemplateFunction(d.Fn) {
			noun = "function template"
		}
		c.Errors.Addf(d.Pos, errs.RSV001, "%s %s is already defined", noun, path.String())
	}
}

func declareTypeVariable(c *Context, d *ast.TypeVariableDefinition) {
	path := appendPath(c.currentModule, []string{d.Name})
	key, _ := c.Tree.Interner.Intern(path)
	if !c.Tree.AddTypeVar(key, d.Access, d.TyVar) {
		c.Errors.Addf(d.Pos, errs.RSV001, "type %s is already defined", path.String())
	}
	declareConstrsFromTypeVar(c, d.TyVar, d.Access, key, d.Pos)
}

func declareConstrsFromTypeVar(c *Context, tv ast.TypeVariable, access ast.AccessModifier, key ident.Key, pos ast.Pos) {
	switch v := tv.(type) {
	case *ast.TypeSynonymVariable:
	case *ast.BuiltinTypeVariable:
	case *ast.DatatypeVariable:
		declareConstrsFromDatatype(c, v.Datatype, access, false, key, nil, false, pos)
	default:
		c.Errors.Internal(pos, "unknown type variable class")
	}
}

func declareTypeFunction(c *Context, d *ast.TypeFunctionDefinition) {
	path := appendPath(c.currentModule, []string{d.Name})
	key, _ := c.Tree.Interner.Intern(path)
	if !c.Tree.AddTypeFun(key, d.Access, d.TyFun) {
		c.Errors.Addf(d.Pos, errs.RSV001, "type template %s is already defined", path.String())
	}
	declareConstrsFromTypeFun(c, d.TyFun, d.Access, key, d.Pos)
}

func declareConstrsFromTypeFun(c *Context, tf ast.TypeFunction, access ast.AccessModifier, key ident.Key, pos ast.Pos) {
	switch v := tf.(type) {
	case *ast.TypeSynonymFunction:
	case *ast.BuiltinTypeFunction:
	case *ast.DatatypeFunction:
		declareConstrsFromDatatype(c, v.Body, access, true, key, nil, false, pos)
	default:
		c.Errors.Internal(pos, "unknown type function class")
	}
}

// declareTypeFunctionInstance flattens a template instance's
// constructors, deferring their owning-datatype access resolution to
// the lazy AccessState model (tree.VariableInfo.EffectiveAccess):
// Name names a template declared elsewhere in the same module, and
// that declaration may not have been processed yet.
func declareTypeFunctionInstance(c *Context, d *ast.TypeFunctionInstanceDefinition) {
	inst, ok := d.TyFun.(*ast.DatatypeFunctionInstance)
	if !ok {
		return
	}
	pending := appendPath(c.currentModule, []string{d.Name})
	prevTemplate := c.templateFlag
	c.templateFlag = inst.Arity > 0
	declareConstrsFromDatatype(c, inst.Body, ast.AccessNone, true, 0, pending, true, d.Pos)
	c.templateFlag = prevTemplate
}

func declareConstrsFromDatatype(c *Context, dt ast.Datatype, access ast.AccessModifier, hasDatatypeFun bool, datatypeKey ident.Key, pendingPath ident.Absolute, usePending bool, pos ast.Pos) {
	var ctors []*ast.ConstructorDef
	switch d := dt.(type) {
	case *ast.NonUniqueDatatype:
		ctors = d.Constructors
	case *ast.UniqueDatatype:
		ctors = d.Constructors
	default:
		c.Errors.Internal(pos, "unknown datatype class")
		return
	}
	for _, ctor := range ctors {
		declareConstr(c, ctor, access, hasDatatypeFun, datatypeKey, pendingPath, usePending)
	}
}

func declareConstr(c *Context, ctor *ast.ConstructorDef, access ast.AccessModifier, hasDatatypeFun bool, datatypeKey ident.Key, pendingPath ident.Absolute, usePending bool) {
	path := appendPath(c.currentModule, []string{ctor.Name})
	key, _ := c.Tree.Interner.Intern(path)
	cv := &ast.ConstructorVariable{Ctor: ctor}
	if ctor.Kind == ast.ConstructorNamedFields {
		ctor.FieldIndices = make(map[string]int, len(ctor.NamedFields))
		for i, field := range ctor.NamedFields {
			if _, dup := ctor.FieldIndices[field.Name]; !dup {
				ctor.FieldIndices[field.Name] = i
			}
		}
	}
	ownAccess := access
	if ctor.Access == ast.AccessPrivate {
		ownAccess = ast.AccessPrivate
	}
	if c.Tree.AddVar(key, ownAccess, cv) {
		vi, _ := c.Tree.VarInfo(key)
		vi.HasDatatypeFun = hasDatatypeFun
		if usePending {
			vi.SetCtorPendingDatatype(pendingPath)
		} else {
			vi.SetCtorDatatypeKey(datatypeKey)
		}
	} else {
		noun := "constructor"
		if c.templateFlag {
			noun = "constructor template"
		}
		c.Errors.Addf(ctor.Pos, errs.RSV001, "%s %s is already defined", noun, path.String())
	}
}

func variableNoun(v ast.Variable) string {
	if isTemplateVariable(v) {
		return "variable template"
	}
	return "variable"
}

func isTemplateVariable(v ast.Variable) bool {
	switch vv := v.(type) {
	case *ast.UserDefinedVariable:
		return len(vv.InstTypeParams) > 0
	case *ast.AliasVariable:
		return len(vv.InstTypeParams) > 0
	case *ast.FunctionVariable:
		return isTemplateFunction(vv.Fn)
	}
	return false
}

func isTemplateFunction(f ast.Function) bool {
	if uf, ok := f.(*ast.UserDefinedFunction); ok {
		return len(uf.InstTypeParams) > 0
	}
	return false
}
