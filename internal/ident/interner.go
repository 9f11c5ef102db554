// Package ident implements the global identifier interner: absolute
// identifiers (dotted module/name paths) are deduped to dense integer
// keys that are stable for the life of a compilation unit.
package ident

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is an opaque handle for an interned absolute identifier. Keys are
// dense, non-negative, and assigned in first-seen order so downstream
// phases can use them as array indices.
type Key int

// Absolute is an ordered sequence of name segments, e.g. {"std", "list"}
// for "std.list". The empty sequence denotes the root module.
type Absolute []string

// String renders an absolute identifier as a dotted path.
func (a Absolute) String() string {
	return strings.Join(a, ".")
}

// Child returns a new absolute identifier with name appended.
func (a Absolute) Child(name string) Absolute {
	out := make(Absolute, len(a)+1)
	copy(out, a)
	out[len(a)] = name
	return out
}

// separator joins segments for map-key purposes; it must not occur in a
// legal name segment.
const separator = "\x1f"

// normalizeSegment applies Unicode NFC normalization to one name
// segment, so two byte-distinct but canonically-equivalent spellings of
// an identifier (e.g. "café" composed vs. combining-accent forms) dedup
// to the same key. The interner is the single owner of the canonical
// identifier copy (spec.md §8.1's dedup invariant), so this is the one
// place normalization needs to happen; grounded on the teacher's
// internal/lexer.Normalize, which applies the same norm.NFC at its own
// (lexer) input boundary. IsNormal is checked first since it is
// allocation-free for the already-normalized segments most source text
// consists of.
func normalizeSegment(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

func normalizeSegments(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = normalizeSegment(s)
	}
	return out
}

func joinSegments(segments []string) string {
	return strings.Join(segments, separator)
}

// Interner owns the canonical mapping between absolute identifiers and
// keys. It is single-threaded: callers must serialize access externally
// (see spec.md §5).
type Interner struct {
	byPath map[string]Key
	byKey  []Absolute
}

// New creates an empty interner.
func New() *Interner {
	return &Interner{byPath: make(map[string]Key)}
}

// Intern assigns (or returns the existing) key for segments. The second
// return value is true iff this call allocated a new key.
func (in *Interner) Intern(segments []string) (Key, bool) {
	segments = normalizeSegments(segments)
	path := joinSegments(segments)
	if key, ok := in.byPath[path]; ok {
		return key, false
	}
	key := Key(len(in.byKey))
	in.byPath[path] = key
	in.byKey = append(in.byKey, Absolute(segments))
	return key, true
}

// LookupKey returns the key for segments if it has already been
// interned.
func (in *Interner) LookupKey(segments []string) (Key, bool) {
	key, ok := in.byPath[joinSegments(normalizeSegments(segments))]
	return key, ok
}

// LookupSegments returns the absolute identifier for key, or nil if key
// was never issued by this interner.
func (in *Interner) LookupSegments(key Key) Absolute {
	if int(key) < 0 || int(key) >= len(in.byKey) {
		return nil
	}
	return in.byKey[key]
}

// Len returns the number of distinct identifiers interned so far.
func (in *Interner) Len() int {
	return len(in.byKey)
}

// Dump returns every interned identifier in key order (the stable
// first-seen declaration order spec.md §3 assigns), for the CLI's
// interactive key inspector.
func (in *Interner) Dump() []Absolute {
	out := make([]Absolute, len(in.byKey))
	copy(out, in.byKey)
	return out
}

// Hash computes a stable in-process hash for segments, for dedupe/lookups
// that don't need the canonical key; the Interner itself keys its map by
// the joined segments and does not call Hash. A multiply-mix over a per-segment string hash suffices; this is not
// intended to be cryptographically strong.
func Hash(segments []string) uint64 {
	const offset64 uint64 = 1469598103934665603
	const prime64 uint64 = 1099511628211

	h := offset64
	for _, s := range segments {
		s = normalizeSegment(s)
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= prime64
		}
		// Mix in a segment boundary so {"ab","c"} and {"a","bc"} differ.
		h ^= 0xff
		h *= prime64
	}
	return h
}
