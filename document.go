package schematics

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ToDocument returns the record's field values as a generic structured
// document (defaults included). The returned map is a copy.
func (r *Record) ToDocument() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// FromDocument builds a record from a generic structured document.
// Declared fields present in doc are set; unknown keys are ignored, since
// the model owns a fixed field set.
func (m *Model) FromDocument(doc map[string]any) *Record {
	r := m.New()
	for _, f := range m.fields {
		if v, ok := doc[f.Name]; ok {
			r.values[f.Name] = v
		}
	}
	return r
}

// ToJSON encodes the record's field values as JSON.
func (r *Record) ToJSON() ([]byte, error) {
	return json.Marshal(r.values)
}

// FromJSON builds a record from a JSON object. Whole-number literals
// decode as int and fractional ones as float64, so type checks keep the
// whole/fractional distinction. Note that JSON itself cannot mark a
// whole-valued float (1.0 encodes as 1), so such values reconstruct as
// whole numbers.
func (m *Model) FromJSON(b []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	normalizeNumbers(doc)
	return m.FromDocument(doc), nil
}

// ToYAML encodes the record's field values as YAML.
func (r *Record) ToYAML() ([]byte, error) {
	return yaml.Marshal(r.values)
}

// FromYAML builds a record from a YAML mapping. The YAML decoder already
// yields int for whole numbers and float64 for fractional ones.
func (m *Model) FromYAML(b []byte) (*Record, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return m.FromDocument(doc), nil
}

// UnmarshalAndValidate decodes a JSON object into a record, then
// validates. The record is returned alongside the validation error so
// callers can inspect the field-level messages.
func (m *Model) UnmarshalAndValidate(b []byte) (*Record, error) {
	r, err := m.FromJSON(b)
	if err != nil {
		return nil, err
	}
	return r, r.Validate()
}

// normalizeNumbers rewrites json.Number values in place: integral
// literals become int, everything else float64.
func normalizeNumbers(doc map[string]any) {
	for k, v := range doc {
		doc[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return int(i)
		}
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case []any:
		for i := range t {
			t[i] = normalizeValue(t[i])
		}
		return t
	case map[string]any:
		normalizeNumbers(t)
		return t
	default:
		return v
	}
}
