package schematics

// CustomValidator wraps one predicate plus a static failure message.
// A value of the wrong runtime type reports the same generic mismatch
// message a [TypeValidator] would; otherwise a false predicate reports
// the configured message with the offending value attached.
//
// Every built-in semantic rule (length bounds, numeric bounds, regex
// match, membership, comparisons) is a CustomValidator closing over its
// own threshold or pattern — there is no separate mechanism for
// "built-in" vs "user" constraints.
type CustomValidator struct {
	want    string
	gate    func(any) bool
	message string
	pred    func(any) bool
}

// Custom returns a predicate validator over values of type T.
func Custom[T any](message string, pred func(T) bool) *CustomValidator {
	t := Type[T]()
	return &CustomValidator{
		want:    t.name,
		gate:    t.matches,
		message: message,
		pred: func(value any) bool {
			v, ok := value.(T)
			return ok && pred(v)
		},
	}
}

// newCustom builds a predicate validator with an explicit type gate.
// The built-in rules use it to gate on a representation family
// ("number", "sequence") rather than a single concrete type.
func newCustom(want string, gate func(any) bool, message string, pred func(any) bool) *CustomValidator {
	return &CustomValidator{want: want, gate: gate, message: message, pred: pred}
}

// TypeName returns the name of the accepted type.
func (v *CustomValidator) TypeName() string {
	return v.want
}

func (v *CustomValidator) Validate(value any, path string) *Result {
	if !v.gate(value) {
		return Failure(path, "expected type "+v.want+", got "+typeNameOf(value))
	}
	if !v.pred(value) {
		return FailureValue(path, v.message, value)
	}
	return Success()
}

func (v *CustomValidator) Parse(value any) (any, bool) {
	if !v.gate(value) || !v.pred(value) {
		return nil, false
	}
	return value, true
}
