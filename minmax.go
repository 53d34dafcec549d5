package schematics

import (
	"fmt"
	"reflect"
)

// Min returns a validation rule that checks if a numeric value is greater
// than or equal to the given limit.
func Min(limit float64) *CustomValidator {
	return numberBound(fmt.Sprintf("must be no less than %v", limit), func(v float64) bool {
		return v >= limit
	})
}

// Max returns a validation rule that checks if a numeric value is less
// than or equal to the given limit.
func Max(limit float64) *CustomValidator {
	return numberBound(fmt.Sprintf("must be no greater than %v", limit), func(v float64) bool {
		return v <= limit
	})
}

// GreaterThan is the exclusive counterpart of [Min].
func GreaterThan(limit float64) *CustomValidator {
	return numberBound(fmt.Sprintf("must be greater than %v", limit), func(v float64) bool {
		return v > limit
	})
}

// LessThan is the exclusive counterpart of [Max].
func LessThan(limit float64) *CustomValidator {
	return numberBound(fmt.Sprintf("must be less than %v", limit), func(v float64) bool {
		return v < limit
	})
}

func numberBound(message string, pred func(float64) bool) *CustomValidator {
	return newCustom("number", isNumber, message, func(value any) bool {
		f, err := getFloat(value)
		if err != nil {
			return false
		}
		return pred(f)
	})
}

// isNumber gates on any numeric representation. Booleans and strings are
// not numbers; there is no coercion.
func isNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	return v.Convert(floatType).Float(), nil
}
