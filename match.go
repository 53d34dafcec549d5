package schematics

import (
	"reflect"
	"regexp"
)

// Matches returns a validation rule that checks if a string matches the
// given pattern.
func Matches(re *regexp.Regexp) *CustomValidator {
	return newCustom("string", isString, "must be in a valid format", func(value any) bool {
		return re.MatchString(reflect.ValueOf(value).String())
	})
}
