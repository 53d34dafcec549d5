package schematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_RunsEveryValidator(t *testing.T) {
	c := NewChain(
		Type[string](),
		Custom[string]("the length must be no less than 3", func(s string) bool { return len(s) >= 3 }),
	)

	// A wrongly-typed input fails both the type check and the custom
	// rule's own type gate: two errors, not one.
	res := c.Validate(42, RootPath)
	assert.Len(t, res.Errors(), 2)

	res = c.Validate("ab", RootPath)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "the length must be no less than 3", res.Errors()[0].Message)

	require.True(t, c.Validate("abc", RootPath).Valid())
}

func TestChain_SeesOriginalInput(t *testing.T) {
	var seen []any
	record := func(name string) *CustomValidator {
		return Custom[int](name, func(n int) bool {
			seen = append(seen, n)
			return true
		})
	}
	c := NewChain(record("first"), record("second"))

	c.Validate(7, RootPath)
	assert.Equal(t, []any{7, 7}, seen)
}

func TestChain_Parse(t *testing.T) {
	c := NewChain(
		Type[int](),
		Custom[int]("must be positive", func(n int) bool { return n > 0 }),
	)

	parsed, ok := c.Parse(5)
	require.True(t, ok)
	assert.Equal(t, 5, parsed)

	_, ok = c.Parse(-5)
	require.False(t, ok)

	// Parse short-circuits at the first failing validator.
	var calls int
	counting := NewChain(
		Custom[int]("never", func(int) bool { calls++; return false }),
		Custom[int]("unreached", func(int) bool { calls++; return true }),
	)
	_, ok = counting.Parse(1)
	require.False(t, ok)
	assert.Equal(t, 1, calls)
}
