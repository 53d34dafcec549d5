package schematics

import (
	"reflect"
	"regexp"
)

// Builder accumulates constraint validators on top of the
// shape-appropriate base validator for T, then finalizes them into an
// immutable [Schema]. The base validator always runs first; added
// constraints run in add-order after it.
//
// Bound methods that do not apply to T's shape (e.g. MinLength on a
// numeric schema) are silent no-ops.
type Builder[T any] struct {
	kind       reflect.Kind
	validators []Validator
}

// NewBuilder returns a builder seeded with the base validator for T,
// selected by the same shape rule as [New].
func NewBuilder[T any]() *Builder[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &Builder[T]{
		kind:       t.Kind(),
		validators: []Validator{baseValidator(t)},
	}
}

// AddValidator appends a custom predicate constraint.
func (b *Builder[T]) AddValidator(message string, pred func(T) bool) *Builder[T] {
	b.validators = append(b.validators, Custom[T](message, pred))
	return b
}

// With appends a prebuilt validator, such as a rule from the is package.
func (b *Builder[T]) With(v Validator) *Builder[T] {
	b.validators = append(b.validators, v)
	return b
}

// MinSize constrains the element count of a sequence schema (inclusive).
func (b *Builder[T]) MinSize(n int) *Builder[T] {
	if b.isSequenceKind() {
		b.validators = append(b.validators, MinSize(n))
	}
	return b
}

// MaxSize constrains the element count of a sequence schema (inclusive).
func (b *Builder[T]) MaxSize(n int) *Builder[T] {
	if b.isSequenceKind() {
		b.validators = append(b.validators, MaxSize(n))
	}
	return b
}

// MinLength constrains the rune length of a text schema (inclusive).
func (b *Builder[T]) MinLength(n int) *Builder[T] {
	if b.kind == reflect.String {
		b.validators = append(b.validators, MinLength(n))
	}
	return b
}

// MaxLength constrains the rune length of a text schema (inclusive).
func (b *Builder[T]) MaxLength(n int) *Builder[T] {
	if b.kind == reflect.String {
		b.validators = append(b.validators, MaxLength(n))
	}
	return b
}

// MinValue constrains a numeric schema from below (inclusive).
func (b *Builder[T]) MinValue(limit float64) *Builder[T] {
	if b.isNumericKind() {
		b.validators = append(b.validators, Min(limit))
	}
	return b
}

// MaxValue constrains a numeric schema from above (inclusive).
func (b *Builder[T]) MaxValue(limit float64) *Builder[T] {
	if b.isNumericKind() {
		b.validators = append(b.validators, Max(limit))
	}
	return b
}

// GreaterThan constrains a numeric schema from below (exclusive).
func (b *Builder[T]) GreaterThan(limit float64) *Builder[T] {
	if b.isNumericKind() {
		b.validators = append(b.validators, GreaterThan(limit))
	}
	return b
}

// LessThan constrains a numeric schema from above (exclusive).
func (b *Builder[T]) LessThan(limit float64) *Builder[T] {
	if b.isNumericKind() {
		b.validators = append(b.validators, LessThan(limit))
	}
	return b
}

// Matches constrains a text schema to the given pattern.
func (b *Builder[T]) Matches(re *regexp.Regexp) *Builder[T] {
	if b.kind == reflect.String {
		b.validators = append(b.validators, Matches(re))
	}
	return b
}

// OneOf constrains the schema to an enumerated set of values.
func (b *Builder[T]) OneOf(values ...T) *Builder[T] {
	anys := make([]any, len(values))
	for i := range values {
		anys[i] = values[i]
	}
	b.validators = append(b.validators, In(anys...))
	return b
}

// Build finalizes the accumulated constraints into an immutable Schema:
// the sole base validator when nothing was added, otherwise a [Chain]
// over the full list.
func (b *Builder[T]) Build() *Schema[T] {
	if len(b.validators) == 1 {
		return FromValidator[T](b.validators[0])
	}
	return FromValidator[T](NewChain(b.validators...))
}

func (b *Builder[T]) isSequenceKind() bool {
	return b.kind == reflect.Slice || b.kind == reflect.Array
}

func (b *Builder[T]) isNumericKind() bool {
	switch b.kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
