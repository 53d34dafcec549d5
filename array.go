package schematics

import (
	"fmt"
	"reflect"
)

// ArrayValidator validates ordered sequences: an optional size bound on
// the sequence itself plus an element validator applied to every element.
// Size-bound and element checks run independently — a too-short sequence
// with one bad element reports both defects. Every element error is
// collected, not just the first.
type ArrayValidator struct {
	elem    Validator
	minSize *int
	maxSize *int
}

// Array returns a validator for sequences whose elements all satisfy elem.
func Array(elem Validator) *ArrayValidator {
	if elem == nil {
		panic("schematics: Array requires an element validator")
	}
	return &ArrayValidator{elem: elem}
}

// MinSize sets the inclusive lower size bound. Call before first use;
// a built tree must not be mutated.
func (v *ArrayValidator) MinSize(n int) *ArrayValidator {
	v.minSize = &n
	return v
}

// MaxSize sets the inclusive upper size bound.
func (v *ArrayValidator) MaxSize(n int) *ArrayValidator {
	v.maxSize = &n
	return v
}

func (v *ArrayValidator) Validate(value any, path string) *Result {
	rv := reflect.ValueOf(value)
	if !isSequence(rv) {
		return Failure(path, "expected Array, got "+typeNameOf(value))
	}

	res := Success()
	n := rv.Len()
	if v.minSize != nil && n < *v.minSize {
		res.Add(&ValidationError{Path: path, Message: fmt.Sprintf("the size must be no less than %d", *v.minSize)})
	}
	if v.maxSize != nil && n > *v.maxSize {
		res.Add(&ValidationError{Path: path, Message: fmt.Sprintf("the size must be no more than %d", *v.maxSize)})
	}
	for i := 0; i < n; i++ {
		res.Merge(v.elem.Validate(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i)))
	}
	return res
}

// Parse builds a new sequence of parsed elements and returns it only if
// every element parses; it stops at the first failing element.
func (v *ArrayValidator) Parse(value any) (any, bool) {
	rv := reflect.ValueOf(value)
	if !isSequence(rv) {
		return nil, false
	}
	n := rv.Len()
	if v.minSize != nil && n < *v.minSize {
		return nil, false
	}
	if v.maxSize != nil && n > *v.maxSize {
		return nil, false
	}

	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		parsed, ok := v.elem.Parse(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out = append(out, parsed)
	}
	return out, true
}
