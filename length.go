package schematics

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// MinLength returns a validation rule that checks if a string's rune
// length is at least n.
func MinLength(n int) *CustomValidator {
	return stringLength(fmt.Sprintf("the length must be no less than %d", n), func(l int) bool {
		return l >= n
	})
}

// MaxLength returns a validation rule that checks if a string's rune
// length is at most n.
func MaxLength(n int) *CustomValidator {
	return stringLength(fmt.Sprintf("the length must be no more than %d", n), func(l int) bool {
		return l <= n
	})
}

// Length returns a validation rule that checks if a string's rune length
// is within the inclusive range [lo, hi].
func Length(lo, hi int) *CustomValidator {
	return stringLength(fmt.Sprintf("the length must be between %d and %d", lo, hi), func(l int) bool {
		return l >= lo && l <= hi
	})
}

// MinSize returns a validation rule that checks if a sequence has at
// least n elements.
func MinSize(n int) *CustomValidator {
	return sequenceSize(fmt.Sprintf("the size must be no less than %d", n), func(l int) bool {
		return l >= n
	})
}

// MaxSize returns a validation rule that checks if a sequence has at
// most n elements.
func MaxSize(n int) *CustomValidator {
	return sequenceSize(fmt.Sprintf("the size must be no more than %d", n), func(l int) bool {
		return l <= n
	})
}

func stringLength(message string, pred func(int) bool) *CustomValidator {
	return newCustom("string", isString, message, func(value any) bool {
		return pred(utf8.RuneCountInString(reflect.ValueOf(value).String()))
	})
}

func sequenceSize(message string, pred func(int) bool) *CustomValidator {
	gate := func(value any) bool {
		return isSequence(reflect.ValueOf(value))
	}
	return newCustom("Array", gate, message, func(value any) bool {
		return pred(reflect.ValueOf(value).Len())
	})
}

func isString(value any) bool {
	if value == nil {
		return false
	}
	return reflect.ValueOf(value).Kind() == reflect.String
}
