package schematics

import (
	"errors"
	"reflect"
)

// ErrUnparsable is returned by [Schema.Parse] when a value that validated
// cleanly nevertheless fails to parse. It guards a defensive path:
// Validate and Parse are maintained in agreement, so a caller should
// never see it.
var ErrUnparsable = errors.New("schematics: value cannot be parsed into the declared type")

// Schema binds one validator tree to a declared type T. The root
// validator is chosen by T's shape at construction and fixed for the
// schema's lifetime; a Schema is immutable and safe to share.
type Schema[T any] struct {
	root Validator
}

// New returns a schema whose root validator is inferred from T's shape:
// slices and arrays validate as sequences over the element type, maps as
// key/value mappings, pointers as optional values, and everything else as
// an exact type check. The inference is recursive.
func New[T any]() *Schema[T] {
	return &Schema[T]{root: baseValidator(reflect.TypeOf((*T)(nil)).Elem())}
}

// FromValidator returns a schema over an explicitly supplied root
// validator. The validator must narrow values to T for Parse to succeed.
func FromValidator[T any](root Validator) *Schema[T] {
	if root == nil {
		panic("schematics: FromValidator requires a validator")
	}
	return &Schema[T]{root: root}
}

// Validator returns the schema's root validator, for embedding the schema
// into larger validator trees or model fields.
func (s *Schema[T]) Validator() Validator {
	return s.root
}

// Validate checks data against the schema and reports every defect found,
// with paths rooted at "root".
func (s *Schema[T]) Validate(data any) *Result {
	return s.root.Validate(data, RootPath)
}

// Valid reports whether data validates cleanly.
func (s *Schema[T]) Valid(data any) bool {
	return s.Validate(data).Valid()
}

// Parse validates data and, when clean, narrows it to T. When invalid,
// the returned error is the first collected defect.
func (s *Schema[T]) Parse(data any) (T, error) {
	var zero T
	res := s.Validate(data)
	if !res.Valid() {
		return zero, res.Errors()[0]
	}

	parsed, ok := s.root.Parse(data)
	if !ok {
		return zero, ErrUnparsable
	}
	out, ok := materialize[T](parsed)
	if !ok {
		return zero, ErrUnparsable
	}
	return out, nil
}

// baseValidator selects the shape-appropriate validator for t.
func baseValidator(t reflect.Type) Validator {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return Array(baseValidator(t.Elem()))
	case reflect.Map:
		return Mapping(baseValidator(t.Key()), baseValidator(t.Elem()))
	case reflect.Pointer:
		return Optional(baseValidator(t.Elem()))
	default:
		return TypeOf(t)
	}
}

// materialize rebuilds the generic graph a composite Parse produces
// ([]any sequences, map[any]any mappings) into the declared type T.
func materialize[T any](parsed any) (T, bool) {
	if v, ok := parsed.(T); ok {
		return v, true
	}
	var zero T
	rv, ok := materializeValue(reflect.TypeOf((*T)(nil)).Elem(), parsed)
	if !ok {
		return zero, false
	}
	out, ok := rv.Interface().(T)
	return out, ok
}

func materializeValue(t reflect.Type, v any) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	if rt := reflect.TypeOf(v); rt.AssignableTo(t) {
		return reflect.ValueOf(v), true
	}

	switch t.Kind() {
	case reflect.Slice:
		rv := reflect.ValueOf(v)
		if !isSequence(rv) {
			return reflect.Value{}, false
		}
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, ok := materializeValue(t.Elem(), rv.Index(i).Interface())
			if !ok {
				return reflect.Value{}, false
			}
			out.Index(i).Set(ev)
		}
		return out, true
	case reflect.Map:
		rv := reflect.ValueOf(v)
		if !isMapping(rv) {
			return reflect.Value{}, false
		}
		out := reflect.MakeMapWithSize(t, rv.Len())
		for _, k := range rv.MapKeys() {
			kv, ok := materializeValue(t.Key(), k.Interface())
			if !ok {
				return reflect.Value{}, false
			}
			vv, ok := materializeValue(t.Elem(), rv.MapIndex(k).Interface())
			if !ok {
				return reflect.Value{}, false
			}
			out.SetMapIndex(kv, vv)
		}
		return out, true
	case reflect.Pointer:
		ev, ok := materializeValue(t.Elem(), v)
		if !ok {
			return reflect.Value{}, false
		}
		out := reflect.New(t.Elem())
		out.Elem().Set(ev)
		return out, true
	default:
		return reflect.Value{}, false
	}
}
