package schematics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	s "github.com/qequ/schematics"
)

func TestSchema_ScalarShape(t *testing.T) {
	sch := s.New[int]()

	require.True(t, sch.Valid(1))
	require.False(t, sch.Valid(1.0))
	require.False(t, sch.Valid("1"))

	res := sch.Validate("1")
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "root", res.Errors()[0].Path)
}

func TestSchema_SequenceShape(t *testing.T) {
	sch := s.New[[]int]()

	require.True(t, sch.Valid([]any{1, 2, 3}))
	require.True(t, sch.Valid([]any{}))
	require.False(t, sch.Valid("nope"))

	res := sch.Validate([]any{1, "two", 3.0})
	require.Len(t, res.Errors(), 2)
	assert.Equal(t, "root[1]", res.Errors()[0].Path)
	assert.Equal(t, "root[2]", res.Errors()[1].Path)
}

func TestSchema_MappingShape(t *testing.T) {
	sch := s.New[map[string]int]()

	require.True(t, sch.Valid(map[string]any{"a": 1}))
	require.True(t, sch.Valid(map[string]any{}))

	res := sch.Validate(map[string]any{"a": "one"})
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "root[a]", res.Errors()[0].Path)
}

func TestSchema_NestedShape(t *testing.T) {
	sch := s.New[map[string][]int]()

	require.True(t, sch.Valid(map[string]any{"xs": []any{1, 2}}))

	res := sch.Validate(map[string]any{"xs": []any{1, "two"}})
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "root[xs][1]", res.Errors()[0].Path)
}

func TestSchema_PointerShapeIsOptional(t *testing.T) {
	sch := s.New[*string]()

	require.True(t, sch.Valid(nil))
	require.True(t, sch.Valid("hi"))
	require.False(t, sch.Valid(42))
}

func TestSchema_ExplicitValidator(t *testing.T) {
	sch := s.FromValidator[any](s.Union(s.Type[int](), s.Type[string]()))

	require.True(t, sch.Valid(1))
	require.True(t, sch.Valid("one"))
	require.False(t, sch.Valid(1.0))
}

func TestSchema_ParseNarrows(t *testing.T) {
	ints, err := s.New[[]int]().Parse([]any{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ints)

	m, err := s.New[map[string]int]().Parse(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, m)

	p, err := s.New[*string]().Parse("hi")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "hi", *p)

	p, err = s.New[*string]().Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSchema_ParseReturnsFirstError(t *testing.T) {
	_, err := s.New[[]int]().Parse([]any{1, "two", "three"})
	require.Error(t, err)
	assert.EqualError(t, err, "root[1]: expected type int, got string")
}

func TestSchema_Deterministic(t *testing.T) {
	sch := s.New[[]int]()
	input := []any{1, "two", 3, "four"}

	first := sch.Validate(input)
	second := sch.Validate(input)
	assert.Equal(t, first.Errors(), second.Errors())
}
