package schematics

import (
	"fmt"
	"reflect"
)

// RootPath is the top-level token of every error path.
const RootPath = "root"

// Validator is the capability shared by every checker in a schema tree:
// it can report defects and it can narrow a value to its declared type.
//
// Validate never panics; it always returns a Result, even "all failed".
// Parse returns the value narrowed to the validator's type, or false if
// the value does not conform. Parse reports no diagnostics and is
// permitted to short-circuit on the first internal failure — it is a fast
// existence check, not an error reporter. The two entry points must agree
// on pass/fail for every input.
//
// Composite validators exclusively own their children and hold no
// back-reference to parents; a built tree is immutable and safe to share.
type Validator interface {
	Validate(value any, path string) *Result
	Parse(value any) (any, bool)
}

// typeNameOf renders the runtime type of value for error messages.
func typeNameOf(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

// typeNamer is implemented by validators that can name the type they
// accept; Union uses it to describe its variant set.
type typeNamer interface {
	TypeName() string
}

// isSequence reports whether rv holds an ordered sequence.
func isSequence(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

// isMapping reports whether rv holds a key/value mapping.
func isMapping(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.Map
}
