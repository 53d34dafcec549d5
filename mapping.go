package schematics

import (
	"fmt"
	"reflect"
)

// MappingValidator validates key/value mappings: every pair actually
// present in the input has its key and value checked, and both sets of
// errors are merged. Iteration order carries no semantics.
//
// This layer does not enforce that a fixed set of keys exists —
// required-key enforcement belongs to the [Model] layer.
type MappingValidator struct {
	keys   Validator
	values Validator
}

// Mapping returns a validator for mappings whose keys satisfy keys and
// whose values satisfy values.
func Mapping(keys, values Validator) *MappingValidator {
	if keys == nil || values == nil {
		panic("schematics: Mapping requires key and value validators")
	}
	return &MappingValidator{keys: keys, values: values}
}

func (v *MappingValidator) Validate(value any, path string) *Result {
	rv := reflect.ValueOf(value)
	if !isMapping(rv) {
		return Failure(path, "expected Map, got "+typeNameOf(value))
	}

	res := Success()
	for _, k := range rv.MapKeys() {
		ki := k.Interface()
		res.Merge(v.keys.Validate(ki, fmt.Sprintf("%s.<key:%v>", path, ki)))
		res.Merge(v.values.Validate(rv.MapIndex(k).Interface(), fmt.Sprintf("%s[%v]", path, ki)))
	}
	return res
}

// Parse builds a new mapping of parsed pairs and returns it only if
// every pair parses.
func (v *MappingValidator) Parse(value any) (any, bool) {
	rv := reflect.ValueOf(value)
	if !isMapping(rv) {
		return nil, false
	}

	out := make(map[any]any, rv.Len())
	for _, k := range rv.MapKeys() {
		pk, ok := v.keys.Parse(k.Interface())
		if !ok {
			return nil, false
		}
		pv, ok := v.values.Parse(rv.MapIndex(k).Interface())
		if !ok {
			return nil, false
		}
		out[pk] = pv
	}
	return out, true
}
