package schematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayValidator_NonSequence(t *testing.T) {
	v := Array(Type[int]())

	res := v.Validate("not a list", RootPath)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "expected Array, got string", res.Errors()[0].Message)

	res = v.Validate(nil, RootPath)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "expected Array, got nil", res.Errors()[0].Message)
}

func TestArrayValidator_CollectsEveryElementError(t *testing.T) {
	v := Array(Type[int]())

	res := v.Validate([]any{1, 2, "three", 4, "five"}, RootPath)
	require.Len(t, res.Errors(), 2)
	assert.Equal(t, "root[2]", res.Errors()[0].Path)
	assert.Equal(t, "expected type int, got string", res.Errors()[0].Message)
	assert.Equal(t, "root[4]", res.Errors()[1].Path)
}

func TestArrayValidator_SizeAndElementChecksAreIndependent(t *testing.T) {
	v := Array(Type[int]()).MinSize(3)

	// Too short and one bad element: both defects report.
	res := v.Validate([]any{1, "two"}, RootPath)
	require.Len(t, res.Errors(), 2)
	assert.Equal(t, "the size must be no less than 3", res.Errors()[0].Message)
	assert.Equal(t, "root[1]", res.Errors()[1].Path)
}

func TestArrayValidator_SizeBoundsInclusive(t *testing.T) {
	v := Array(Type[int]()).MinSize(2).MaxSize(4)

	for size, valid := range map[int]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		values := make([]any, size)
		for i := range values {
			values[i] = i
		}
		assert.Equal(t, valid, v.Validate(values, RootPath).Valid(), "size %d", size)
	}
}

func TestArrayValidator_EmptySequenceValidWithoutMinSize(t *testing.T) {
	require.True(t, Array(Type[int]()).Validate([]any{}, RootPath).Valid())
	require.False(t, Array(Type[int]()).MinSize(1).Validate([]any{}, RootPath).Valid())
}

func TestArrayValidator_Parse(t *testing.T) {
	v := Array(Type[int]())

	parsed, ok := v.Parse([]any{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2, 3}, parsed)

	_, ok = v.Parse([]any{1, "two"})
	require.False(t, ok)

	_, ok = v.Parse("not a list")
	require.False(t, ok)

	// Size bounds gate Parse just like Validate.
	_, ok = Array(Type[int]()).MinSize(2).Parse([]any{1})
	require.False(t, ok)
}

func TestArrayValidator_TypedSlicesAccepted(t *testing.T) {
	v := Array(Type[int]())
	require.True(t, v.Validate([]int{1, 2, 3}, RootPath).Valid())
	require.False(t, v.Validate([]string{"a"}, RootPath).Valid())
}
