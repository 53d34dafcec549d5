package schematics

import (
	"strings"
)

// UnionValidator accepts a value that satisfies any one of its variants.
// Failure is a single membership error naming the variant set, not the
// per-variant defects.
type UnionValidator struct {
	variants []Validator
}

// Union returns a validator accepting any of the given variants.
func Union(variants ...Validator) *UnionValidator {
	if len(variants) == 0 {
		panic("schematics: Union requires at least one variant")
	}
	owned := make([]Validator, len(variants))
	copy(owned, variants)
	return &UnionValidator{variants: owned}
}

func (v *UnionValidator) Validate(value any, path string) *Result {
	for _, variant := range v.variants {
		if variant.Validate(value, path).Valid() {
			return Success()
		}
	}
	return FailureValue(path, v.message(), value)
}

// Parse returns the parse result of the first variant that accepts the value.
func (v *UnionValidator) Parse(value any) (any, bool) {
	for _, variant := range v.variants {
		if parsed, ok := variant.Parse(value); ok {
			return parsed, true
		}
	}
	return nil, false
}

func (v *UnionValidator) message() string {
	names := make([]string, 0, len(v.variants))
	for _, variant := range v.variants {
		n, ok := variant.(typeNamer)
		if !ok {
			return "does not match any allowed variant"
		}
		names = append(names, n.TypeName())
	}
	return "expected one of (" + strings.Join(names, " | ") + ")"
}
