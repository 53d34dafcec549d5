package schematics

// OptionalValidator tolerates absence: a nil value is valid and parses to
// nil, any other value is handed to the wrapped validator.
type OptionalValidator struct {
	inner Validator
}

// Optional wraps inner so that nil values pass.
func Optional(inner Validator) *OptionalValidator {
	if inner == nil {
		panic("schematics: Optional requires an inner validator")
	}
	return &OptionalValidator{inner: inner}
}

func (v *OptionalValidator) Validate(value any, path string) *Result {
	if value == nil {
		return Success()
	}
	return v.inner.Validate(value, path)
}

func (v *OptionalValidator) Parse(value any) (any, bool) {
	if value == nil {
		return nil, true
	}
	return v.inner.Parse(value)
}
