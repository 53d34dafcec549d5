package schematics

// Chain is an ordered AND-composition of validators. Validate runs every
// validator regardless of earlier failures and merges all results, so a
// value failing both a type check and a length rule reports both. All
// validators see the same original input value — a chain is not a
// transform pipeline; later validators never receive output from earlier
// ones.
type Chain struct {
	validators []Validator
}

// NewChain returns a chain over the given validators, run in order.
func NewChain(validators ...Validator) *Chain {
	owned := make([]Validator, len(validators))
	copy(owned, validators)
	return &Chain{validators: owned}
}

func (c *Chain) Validate(value any, path string) *Result {
	res := Success()
	for _, v := range c.validators {
		res.Merge(v.Validate(value, path))
	}
	return res
}

// Parse stops at the first validator that fails to parse; if every
// validator parses, the result is the original input value.
func (c *Chain) Parse(value any) (any, bool) {
	for _, v := range c.validators {
		if _, ok := v.Parse(value); !ok {
			return nil, false
		}
	}
	return value, true
}
