package schematics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Validate and Parse are maintained independently but must agree on
// pass/fail for every input.
func TestValidateParseConsistency(t *testing.T) {
	validators := map[string]Validator{
		"type":     Type[int](),
		"custom":   Custom[int]("must be even", func(n int) bool { return n%2 == 0 }),
		"array":    Array(Type[int]()),
		"sized":    Array(Type[int]()).MinSize(1).MaxSize(3),
		"mapping":  Mapping(Type[string](), Type[int]()),
		"chain":    NewChain(Type[int](), Min(0)),
		"optional": Optional(Type[int]()),
		"union":    Union(Type[int](), Type[string]()),
		"min":      Min(2),
		"length":   MinLength(2),
		"in":       In(1, 2),
	}
	inputs := []any{
		nil,
		0,
		1,
		2,
		-1,
		1.0,
		"",
		"ab",
		"three",
		true,
		[]any{},
		[]any{1, 2},
		[]any{1, "two"},
		[]any{1, 2, 3, 4},
		map[string]any{},
		map[string]any{"a": 1},
		map[string]any{"a": "one"},
		map[any]any{1: 1},
	}

	for name, v := range validators {
		for _, input := range inputs {
			t.Run(fmt.Sprintf("%s/%v", name, input), func(t *testing.T) {
				valid := v.Validate(input, RootPath).Valid()
				_, ok := v.Parse(input)
				require.Equal(t, valid, ok, "Validate and Parse disagree for %#v", input)
			})
		}
	}
}
