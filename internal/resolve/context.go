// Package resolve implements the declaration pass (C5) and the
// identifier-resolution pass (C6): the two traversals that turn a
// parsed ast.Source forest into a fully-resolved tree.Tree (spec.md
// §4.4, §4.5).
package resolve

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/errs"
	"github.com/vesper-lang/vesper/internal/ident"
	"github.com/vesper-lang/vesper/internal/tree"
)

// predefModule is the well-known fallback namespace consulted only
// after the current module and the imported-module stack have all
// missed (spec.md §4.5.1). It is never seeded by Seed, so it misses
// unless a source itself declares a `predef` module; see SPEC_FULL.md
// for the rationale
// carried over from original_source/comp/frontend/resolver.cpp.
var predefModule = ident.Absolute{"predef"}

// Context is the mutable traversal state threaded through both passes:
// the imported-module stack, the local-variable scope, the
// closure-limit stack for primitive lambdas, and the type-parameter
// scope for templates (spec.md §4.5).
type Context struct {
	Tree   *tree.Tree
	Errors *errs.Accumulator

	currentModule ident.Absolute

	// importedModuleStack holds one frame per enclosing definition list
	// (a source file or a nested module), empty until that list's first
	// `import`; AddImport appends to the
	// innermost (last) frame. Lookup walks frames newest-to-oldest, and
	// within a frame, last-imported-to-first (spec.md §4.5.1).
	importedModuleStack [][]ident.Absolute

	// frames is the local-variable stack: one entry per open scope
	// (function/lambda arguments, a let's bindings, a match case's
	// pattern bindings), each holding the names it introduced in
	// declaration order.
	frames [][]string
	// localVarMap maps a name to the stack of local indices currently
	// shadowing it, innermost last.
	localVarMap map[string][]int
	localVarCount int

	// topLocalVarSet holds the names declared so far in the current
	// binding group (the argument list, the let's bindings, or one
	// pattern's field names) — cleared by ClearLocalGroup before each
	// new group so duplicate-within-group detection doesn't see stale
	// names from a previous group.
	topLocalVarSet map[string]bool

	// closureLimitStack: a primitive lambda cannot capture locals
	// declared outside it. Entering one pushes the local count at entry;
	// LookupLocal rejects any index below the innermost limit.
	closureLimitStack []int

	// typeParamIndices/typeParamCount/templateFlag model the
	// type-parameter scope opened for a template's own parameter list
	// (spec.md §4.5.5): resolving a bare name against it yields a
	// TypeParameterExpr index rather than a tree lookup.
	typeParamIndices map[string]int
	typeParamCount   int
	templateFlag     bool
}

// NewContext creates a traversal context rooted at the given module
// over t, recording errors into errAcc.
func NewContext(t *tree.Tree, errAcc *errs.Accumulator, root ident.Absolute) *Context {
	return &Context{
		Tree:          t,
		Errors:        errAcc,
		currentModule: root,
		localVarMap:   make(map[string][]int),
		topLocalVarSet: make(map[string]bool),
	}
}

// CurrentModule returns the module path definitions are currently
// being declared/resolved under.
func (c *Context) CurrentModule() ident.Absolute { return c.currentModule }

// WithModule runs fn with the current module temporarily set to m,
// restoring the previous value afterward. Used when entering a nested
// ModuleDefinition.
func (c *Context) WithModule(m ident.Absolute, fn func()) {
	prev := c.currentModule
	c.currentModule = m
	fn()
	c.currentModule = prev
}

// ---- imported-module stack ----

// PushImportFrame opens a new (initially empty) import frame, scoped to
// one definition list.
func (c *Context) PushImportFrame() {
	c.importedModuleStack = append(c.importedModuleStack, nil)
}

// PopImportFrame closes the innermost import frame.
func (c *Context) PopImportFrame() {
	c.importedModuleStack = c.importedModuleStack[:len(c.importedModuleStack)-1]
}

// AddImport records m as imported for the remainder of the innermost
// frame's definition list.
func (c *Context) AddImport(m ident.Absolute) {
	top := len(c.importedModuleStack) - 1
	c.importedModuleStack[top] = append(c.importedModuleStack[top], m)
}

// ImportedModules returns every imported module path currently in
// scope, innermost-frame-first and within a frame last-imported-first —
// the priority order spec.md §4.5.1 resolves against.
func (c *Context) ImportedModules() []ident.Absolute {
	var out []ident.Absolute
	for i := len(c.importedModuleStack) - 1; i >= 0; i-- {
		frame := c.importedModuleStack[i]
		for j := len(frame) - 1; j >= 0; j-- {
			out = append(out, frame[j])
		}
	}
	return out
}

// ---- local-variable scope ----

// PushLocalFrame opens a new (initially empty) local scope frame.
func (c *Context) PushLocalFrame() {
	c.frames = append(c.frames, nil)
}

// PopLocalFrame closes the innermost local scope frame, popping every
// name it introduced in reverse order and decrementing localVarCount by
// the frame's size (spec.md §4.5.4 "leaving any frame pops locals in
// reverse order").
func (c *Context) PopLocalFrame() {
	top := len(c.frames) - 1
	names := c.frames[top]
	for i := len(names) - 1; i >= 0; i-- {
		name := names[i]
		stack := c.localVarMap[name]
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			delete(c.localVarMap, name)
		} else {
			c.localVarMap[name] = stack
		}
		c.localVarCount--
	}
	c.frames = c.frames[:top]
}

// ClearLocalGroup starts a new binding group for duplicate-within-group
// detection. Call it once before declaring a function's arguments, a
// let's bindings, or one pattern's field names.
func (c *Context) ClearLocalGroup() {
	c.topLocalVarSet = make(map[string]bool)
}

// DeclareLocal adds name to the innermost open frame, returning the
// index assigned to it and whether it duplicates a name already
// declared earlier in the current binding group (the caller reports
// the duplicate; the name is still pushed so later indices stay
// well-formed).
func (c *Context) DeclareLocal(name string) (index int, duplicate bool) {
	if c.topLocalVarSet[name] {
		duplicate = true
	} else {
		c.topLocalVarSet[name] = true
	}
	index = c.localVarCount
	c.localVarCount++
	top := len(c.frames) - 1
	c.frames[top] = append(c.frames[top], name)
	c.localVarMap[name] = append(c.localVarMap[name], index)
	return index, duplicate
}

// LookupLocal resolves name against the local-variable scope, honoring
// the innermost closure limit: a primitive lambda cannot see locals
// declared before it was entered (spec.md §4.5.1, §4.5.6).
func (c *Context) LookupLocal(name string) (index int, ok bool) {
	stack := c.localVarMap[name]
	if len(stack) == 0 {
		return 0, false
	}
	idx := stack[len(stack)-1]
	if len(c.closureLimitStack) > 0 {
		limit := c.closureLimitStack[len(c.closureLimitStack)-1]
		if idx < limit {
			return 0, false
		}
	}
	return idx, true
}

// ---- closure-limit stack ----

// PushClosureLimit records the current local count as the floor a
// nested primitive lambda's body may see. It opens no local frame; the
// lambda's arguments get theirs from resolveArgs.
func (c *Context) PushClosureLimit() {
	c.closureLimitStack = append(c.closureLimitStack, c.localVarCount)
}

// PopClosureLimit removes the innermost closure limit.
func (c *Context) PopClosureLimit() {
	c.closureLimitStack = c.closureLimitStack[:len(c.closureLimitStack)-1]
}

// ---- type-parameter scope ----

// BeginTemplate opens the type-parameter scope for a template's own
// parameter list, declaring params at indices 0..len(params)-1.
func (c *Context) BeginTemplate(params []string) {
	c.templateFlag = true
	c.typeParamIndices = make(map[string]int, len(params))
	for i, p := range params {
		c.typeParamIndices[p] = i
	}
	c.typeParamCount = len(params)
}

// EndTemplate closes the type-parameter scope opened by BeginTemplate.
func (c *Context) EndTemplate() {
	c.templateFlag = false
	c.typeParamIndices = nil
	c.typeParamCount = 0
}

// InTemplate reports whether a type-parameter scope is currently open.
func (c *Context) InTemplate() bool { return c.templateFlag }

// TypeParamIndex resolves name against the open type-parameter scope.
func (c *Context) TypeParamIndex(name string) (int, bool) {
	idx, ok := c.typeParamIndices[name]
	return idx, ok
}

// AllocateTypeParam admits a new, previously-unseen type parameter name
// into the open scope (permitted only at specific positions — a type
// expression resolved with canAddParams, a type function's own argument
// list, or an instance's own fresh parameters — per spec.md §4.5.5) and
// returns its index.
func (c *Context) AllocateTypeParam(name string) int {
	idx := c.typeParamCount
	c.typeParamIndices[name] = idx
	c.typeParamCount++
	return idx
}
