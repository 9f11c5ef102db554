// Package errs provides the resolver's error accumulator and the
// structured error-code registry used to format and export diagnostics.
// Adapted from the teacher's internal/errors package, re-keyed to the
// resolver's own taxonomy.
package errs

// Error code constants, grouped by the taxonomy in spec.md §7.
const (
	// RSV001 — redefinition: duplicate variable/function/type/constructor
	// name in its declaring scope.
	RSV001 = "RSV001"

	// RSV002 — redefinition: duplicate argument, let-binding,
	// constructor-field, or type-parameter name inside one binding group.
	RSV002 = "RSV002"

	// RSV003 — undefined identifier: no searched scope produced a match.
	RSV003 = "RSV003"

	// RSV004 — private: identifier exists but is not visible from the
	// current module.
	RSV004 = "RSV004"

	// RSV005 — kind mismatch: identifier does not resolve to the kind of
	// entity the use site requires (e.g. not a constructor, wrong
	// constructor shape).
	RSV005 = "RSV005"

	// RSV006 — arity mismatch: too few or too many positional
	// constructor fields.
	RSV006 = "RSV006"

	// RSV007 — field error: unknown field name, or a field specified
	// twice in one constructor occurrence.
	RSV007 = "RSV007"

	// RSV008 — alias cycle: a chain of alias variables refers to
	// itself.
	RSV008 = "RSV008"

	// RSV009 — template misuse: a type-parameter expression outside a
	// template scope, or an undefined type parameter inside one.
	RSV009 = "RSV009"

	// RSV010 — annotation error: unknown annotation, or a contradictory
	// eager/lazy or memoized/unmemoized combination.
	RSV010 = "RSV010"

	// RSV011 — internal invariant violation (unexpected AST variant,
	// non-empty carry-over stack at the end of resolution).
	RSV011 = "RSV011"
)

// Category describes which of the spec.md §7 taxonomy buckets an error
// code belongs to.
type Category string

const (
	CategoryRedefinition   Category = "redefinition"
	CategoryUndefined      Category = "undefined"
	CategoryPrivate        Category = "private"
	CategoryKindMismatch   Category = "kind-mismatch"
	CategoryArityMismatch  Category = "arity-mismatch"
	CategoryField          Category = "field"
	CategoryAliasCycle     Category = "alias-cycle"
	CategoryTemplateMisuse Category = "template-misuse"
	CategoryAnnotation     Category = "annotation"
	CategoryInternal       Category = "internal"
)

// Info describes one registered error code.
type Info struct {
	Code        string
	Category    Category
	Description string
}

// Registry maps every code this package emits to its Info.
var Registry = map[string]Info{
	RSV001: {RSV001, CategoryRedefinition, "duplicate top-level definition"},
	RSV002: {RSV002, CategoryRedefinition, "duplicate name within one binding group"},
	RSV003: {RSV003, CategoryUndefined, "identifier could not be resolved"},
	RSV004: {RSV004, CategoryPrivate, "identifier is private to its module"},
	RSV005: {RSV005, CategoryKindMismatch, "identifier resolved to the wrong kind of entity"},
	RSV006: {RSV006, CategoryArityMismatch, "wrong number of positional constructor fields"},
	RSV007: {RSV007, CategoryField, "unknown or duplicated named field"},
	RSV008: {RSV008, CategoryAliasCycle, "alias variable chain refers to itself"},
	RSV009: {RSV009, CategoryTemplateMisuse, "type parameter used outside its template, or left undefined inside one"},
	RSV010: {RSV010, CategoryAnnotation, "unknown or contradictory function annotation"},
	RSV011: {RSV011, CategoryInternal, "internal invariant violation"},
}

// Lookup returns the registered Info for code.
func Lookup(code string) (Info, bool) {
	info, ok := Registry[code]
	return info, ok
}
