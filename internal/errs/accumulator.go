package errs

import (
	"fmt"

	"github.com/vesper-lang/vesper/internal/ast"
)

// Error is one positional diagnostic (spec.md §4.6).
type Error struct {
	Pos     ast.Pos
	Code    string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
}

// Accumulator collects errors across a traversal. Errors never unwind:
// every failure is appended here and the traversal continues so a
// single pass can report many errors at once (spec.md §4.6, §7).
type Accumulator struct {
	errors []Error
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add records an error at pos with the given code and message.
func (a *Accumulator) Add(pos ast.Pos, code, message string) {
	a.errors = append(a.errors, Error{Pos: pos, Code: code, Message: message})
}

// Addf is Add with fmt.Sprintf-style formatting.
func (a *Accumulator) Addf(pos ast.Pos, code, format string, args ...interface{}) {
	a.Add(pos, code, fmt.Sprintf(format, args...))
}

// Internal records an unexpected-AST-variant or broken-invariant error.
// Per spec.md §4.6 these are prefixed "internal error:" and still do
// not abort the traversal.
func (a *Accumulator) Internal(pos ast.Pos, message string) {
	a.Add(pos, RSV011, "internal error: "+message)
}

// HasErrors reports whether any error has been recorded.
func (a *Accumulator) HasErrors() bool {
	return len(a.errors) > 0
}

// Ok is the boolean success status spec.md §4.6/§7 describes: true iff
// no error was recorded.
func (a *Accumulator) Ok() bool {
	return !a.HasErrors()
}

// Errors returns every recorded error, in the order they were added.
func (a *Accumulator) Errors() []Error {
	return a.errors
}

// Merge appends other's errors onto a, preserving order, combining two
// accumulators into one shared list (spec.md §4 "data flow"). Resolve
// itself records every file's errors into a single accumulator.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	a.errors = append(a.errors, other.errors...)
}
