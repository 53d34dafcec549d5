package schematics

import (
	"fmt"
	"strings"
)

// ValidationError describes a single defect found during validation.
// Path locates the defect within the root input (e.g. "root.users[0][id]"),
// Message says what went wrong, and Value optionally carries the offending
// raw value for diagnostics. A ValidationError is immutable once created.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Path, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Result is an ordered collection of validation defects. An empty Result
// is a valid one. Results are created per validation call and never shared.
type Result struct {
	errors []*ValidationError
}

// Success returns an empty, valid Result.
func Success() *Result {
	return &Result{}
}

// Failure returns a Result holding a single error at path.
func Failure(path, message string) *Result {
	r := &Result{}
	r.Add(&ValidationError{Path: path, Message: message})
	return r
}

// FailureValue is like Failure but attaches the offending value.
func FailureValue(path, message string, value any) *Result {
	r := &Result{}
	r.Add(&ValidationError{Path: path, Message: message, Value: value})
	return r
}

// Valid reports whether no errors were collected.
func (r *Result) Valid() bool {
	return len(r.errors) == 0
}

// Errors returns the collected errors in the order they were found.
func (r *Result) Errors() []*ValidationError {
	return r.errors
}

// Add appends a single error.
func (r *Result) Add(e *ValidationError) {
	r.errors = append(r.errors, e)
}

// Merge appends the errors of other in call order. Callers that need a
// deterministic ordering for comparison must sort explicitly.
func (r *Result) Merge(other *Result) {
	r.errors = append(r.errors, other.errors...)
}

// MergeUnder appends the errors of other, re-rooting each incoming path
// under prefix. The engine's own recursion always passes fully qualified
// paths down and never needs this; it exists for callers composing
// schema results by hand.
func (r *Result) MergeUnder(other *Result, prefix string) {
	for _, e := range other.errors {
		path := e.Path
		if rest, ok := strings.CutPrefix(path, RootPath); ok {
			path = prefix + rest
		} else {
			path = prefix + "." + path
		}
		r.Add(&ValidationError{Path: path, Message: e.Message, Value: e.Value})
	}
}

func (r *Result) String() string {
	msgs := make([]string, len(r.errors))
	for i, e := range r.errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
