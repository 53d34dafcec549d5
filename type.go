package schematics

import (
	"fmt"
	"reflect"
)

// TypeValidator checks that a value's runtime representation exactly
// matches the declared type. There is no cross-representation coercion:
// a whole number is not a fractional number and a boolean is not a
// one/zero integer.
type TypeValidator struct {
	typ  reflect.Type
	name string
}

// Type returns a validator for the exact runtime type T.
// A plain interface target (e.g. Type[any]()) accepts any non-nil value.
func Type[T any]() *TypeValidator {
	return TypeOf(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeOf returns a validator for the exact runtime type t.
func TypeOf(t reflect.Type) *TypeValidator {
	return &TypeValidator{typ: t, name: t.String()}
}

// TypeName returns the name of the accepted type.
func (v *TypeValidator) TypeName() string {
	return v.name
}

func (v *TypeValidator) matches(value any) bool {
	if value == nil {
		return false
	}
	rt := reflect.TypeOf(value)
	if v.typ.Kind() == reflect.Interface {
		return rt.Implements(v.typ)
	}
	return rt == v.typ
}

// Validate reports a single type-mismatch error unless the value already
// has the declared type.
func (v *TypeValidator) Validate(value any, path string) *Result {
	if !v.matches(value) {
		return Failure(path, fmt.Sprintf("expected type %s, got %s", v.name, typeNameOf(value)))
	}
	return Success()
}

// Parse returns the value unchanged iff it already has the declared type.
func (v *TypeValidator) Parse(value any) (any, bool) {
	if !v.matches(value) {
		return nil, false
	}
	return value, true
}
