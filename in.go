package schematics

import (
	"fmt"
	"reflect"
	"strings"
)

// In returns a validation rule that checks if a value is one of the
// allowed values.
func In(values ...any) *CustomValidator {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	message := fmt.Sprintf("must be one of %s", strings.Join(want, ", "))

	return newCustom("any", anyValue, message, func(value any) bool {
		for _, allowed := range values {
			if equalValues(value, allowed) {
				return true
			}
		}
		return false
	})
}

// equalValues compares without panicking on uncomparable inputs.
func equalValues(a, b any) bool {
	ra := reflect.ValueOf(a)
	if ra.IsValid() && ra.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
