package ast

import "github.com/vesper-lang/vesper/internal/ident"

// IdentRef is a relative identifier occurrence: a name or dotted path as
// written in source, plus the slots the resolver fills in. Exactly one
// of HasKey / HasLocal is set once resolution of a reference that
// succeeded has run; if resolution failed, neither is set and an error
// has been recorded instead (spec.md §3 invariant 2).
type IdentRef struct {
	Segments []string
	// Absolute marks a reference written with a leading "." (e.g.
	// ".somelib.f"): resolution starts from the root module instead of
	// walking the current-module/imports/predef search order (spec.md
	// §4.5.1).
	Absolute bool
	Pos      Pos

	HasKey bool
	Key    ident.Key

	HasLocal   bool
	LocalIndex int
}

// NewIdentRef creates an unresolved reference.
func NewIdentRef(segments []string, pos Pos) *IdentRef {
	return &IdentRef{Segments: segments, Pos: pos}
}

// NewAbsoluteIdentRef creates an unresolved root-anchored reference.
func NewAbsoluteIdentRef(segments []string, pos Pos) *IdentRef {
	return &IdentRef{Segments: segments, Absolute: true, Pos: pos}
}

// SetKey records a successful resolution to a global.
func (r *IdentRef) SetKey(k ident.Key) {
	r.HasKey = true
	r.Key = k
	r.HasLocal = false
}

// SetLocal records a successful resolution to a local-variable index.
func (r *IdentRef) SetLocal(idx int) {
	r.HasLocal = true
	r.LocalIndex = idx
	r.HasKey = false
}

// Resolved reports whether this reference carries either a key or a
// local index.
func (r *IdentRef) Resolved() bool {
	return r.HasKey || r.HasLocal
}

func (r *IdentRef) Position() Pos { return r.Pos }
