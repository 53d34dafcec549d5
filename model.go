package schematics

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// FieldErrors maps field names to their ordered validation messages.
// It is based on url.Values to leverage built-in string slice handling.
type FieldErrors url.Values

// Add appends a message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for a field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether a field has any messages.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no field has messages.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// Field describes one declared model field: its name, the validators run
// against a present value, whether a value must be present, and an
// optional default applied to new records.
type Field struct {
	Name       string
	Validators []Validator
	Required   bool
	Default    any
	HasDefault bool
}

// Model is the immutable field-descriptor table of a declared model type.
// Build one with [DefineModel]; it is safe to share across goroutines.
type Model struct {
	name   string
	fields []*Field
	index  map[string]*Field
	checks []func(*Record)
}

// ModelBuilder accumulates field descriptors and cross-field checks for a
// model type. It is the explicit registration step performed once at
// model definition.
type ModelBuilder struct {
	name   string
	fields []*Field
	seen   map[string]bool
	checks []func(*Record)
}

// DefineModel starts the declaration of a model type with the given name.
func DefineModel(name string) *ModelBuilder {
	return &ModelBuilder{name: name, seen: map[string]bool{}}
}

// Field declares the next field in order, with the validators to run
// against a present value. Declaring the same name twice panics: the
// field set is fixed at definition time and a duplicate is a programming
// error.
func (b *ModelBuilder) Field(name string, validators ...Validator) *ModelBuilder {
	if b.seen[name] {
		panic(fmt.Sprintf("schematics: field %q declared twice on model %q", name, b.name))
	}
	b.seen[name] = true
	owned := make([]Validator, len(validators))
	copy(owned, validators)
	b.fields = append(b.fields, &Field{Name: name, Validators: owned})
	return b
}

// Required marks the most recently declared field as required.
func (b *ModelBuilder) Required() *ModelBuilder {
	b.last().Required = true
	return b
}

// Default sets the default value of the most recently declared field.
// New records start with the default already present.
func (b *ModelBuilder) Default(value any) *ModelBuilder {
	f := b.last()
	f.Default = value
	f.HasDefault = true
	return b
}

// Check registers a cross-field hook, run after all field-level checks.
// The hook records additional messages via [Record.AddError]; this is how
// multi-field constraints are expressed.
func (b *ModelBuilder) Check(fn func(*Record)) *ModelBuilder {
	b.checks = append(b.checks, fn)
	return b
}

func (b *ModelBuilder) last() *Field {
	if len(b.fields) == 0 {
		panic("schematics: no field declared on model " + b.name)
	}
	return b.fields[len(b.fields)-1]
}

// Build finalizes the declaration into an immutable Model.
func (b *ModelBuilder) Build() *Model {
	fields := make([]*Field, len(b.fields))
	copy(fields, b.fields)
	index := make(map[string]*Field, len(fields))
	for _, f := range fields {
		index[f.Name] = f
	}
	checks := make([]func(*Record), len(b.checks))
	copy(checks, b.checks)
	return &Model{name: b.name, fields: fields, index: index, checks: checks}
}

// Name returns the model's declared name.
func (m *Model) Name() string {
	return m.name
}

// Fields returns the declared field descriptors in declaration order.
func (m *Model) Fields() []*Field {
	out := make([]*Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// New returns a fresh record of this model with defaults applied.
func (m *Model) New() *Record {
	r := &Record{model: m, values: map[string]any{}, errors: FieldErrors{}}
	for _, f := range m.fields {
		if f.HasDefault {
			r.values[f.Name] = f.Default
		}
	}
	return r
}

// Record is one instance of a model. It owns its field values and one
// mutable error bucket, which is cleared and rebuilt on every Valid call.
// A record must be confined to one goroutine at a time.
type Record struct {
	model  *Model
	values map[string]any
	errors FieldErrors
}

// Model returns the record's model type.
func (r *Record) Model() *Model {
	return r.model
}

// Set assigns a value to a declared field. Assigning to an undeclared
// field is an error; the field set is fixed by the model.
func (r *Record) Set(name string, value any) error {
	if _, ok := r.model.index[name]; !ok {
		return fmt.Errorf("schematics: model %q has no field %q", r.model.name, name)
	}
	r.values[name] = value
	return nil
}

// Get returns a field's value and whether it is present.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Unset removes a field's value, making it absent.
func (r *Record) Unset(name string) {
	delete(r.values, name)
}

// Errors returns the record's error bucket as left by the last Valid
// call. The bucket is rewritten in place on each call.
func (r *Record) Errors() FieldErrors {
	return r.errors
}

// AddError records an extra message under a field name. Cross-field
// checks use it to report multi-field constraint failures.
func (r *Record) AddError(field, message string) {
	r.errors.Add(field, message)
}

// Valid clears the error bucket, checks every declared field in
// declaration order, runs the cross-field checks, and reports whether
// the bucket ended up empty.
//
// An absent required field records "is required". A present value runs
// through each of the field's validators; every produced error's message
// is recorded under the field name (the path is discarded — the field
// name already disambiguates).
func (r *Record) Valid() bool {
	r.errors = FieldErrors{}
	for _, f := range r.model.fields {
		value, present := r.values[f.Name]
		if !present {
			if f.Required {
				r.errors.Add(f.Name, "is required")
			}
			continue
		}
		for _, v := range f.Validators {
			for _, e := range v.Validate(value, f.Name).Errors() {
				r.errors.Add(f.Name, e.Message)
			}
		}
	}
	for _, check := range r.model.checks {
		check(r)
	}
	return r.errors.IsEmpty()
}

// Validate runs Valid and, when the record is invalid, returns one
// aggregate error joining every field's messages in declaration order.
func (r *Record) Validate() error {
	if r.Valid() {
		return nil
	}
	return newAggregateError(r)
}

// AggregateError bundles every field's validation messages into one
// error, as returned by [Record.Validate].
type AggregateError struct {
	Fields FieldErrors
	msg    string
}

func (e *AggregateError) Error() string {
	return e.msg
}

func newAggregateError(r *Record) *AggregateError {
	fields := FieldErrors{}
	for k, v := range r.errors {
		fields[k] = append([]string(nil), v...)
	}

	var parts []string
	covered := map[string]bool{}
	for _, f := range r.model.fields {
		if msgs := fields[f.Name]; len(msgs) > 0 {
			parts = append(parts, f.Name+": "+strings.Join(msgs, ", "))
		}
		covered[f.Name] = true
	}
	// Cross-field checks may record under names outside the declared set.
	var extra []string
	for name := range fields {
		if !covered[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		parts = append(parts, name+": "+strings.Join(fields[name], ", "))
	}

	return &AggregateError{Fields: fields, msg: strings.Join(parts, "; ")}
}
