package schematics

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotEmpty is a validation rule that checks if a value is neither nil nor
// a zero value (empty string, zero number, empty collection).
var NotEmpty = newCustom("any", anyValue, "cannot be blank", func(value any) bool {
	return validation.Required.Validate(value) == nil
})

// NotNil is a validation rule that checks if a value is not nil. Zero
// values are allowed; use [NotEmpty] to reject those too.
var NotNil = newCustom("any", anyValue, "cannot be nil", func(value any) bool {
	return validation.NotNil.Validate(value) == nil
})

// Date returns a validation rule that checks if a string parses under the
// given layout. Empty strings pass; pair with [NotEmpty] or [MinLength]
// to require a value.
func Date(layout string) *CustomValidator {
	rule := validation.Date(layout)
	message := fmt.Sprintf("must be a valid date in %s format", layout)
	return newCustom("string", isString, message, func(value any) bool {
		return rule.Validate(value) == nil
	})
}

func anyValue(any) bool { return true }
