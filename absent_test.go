package schematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmpty(t *testing.T) {
	require.True(t, NotEmpty.Validate("x", RootPath).Valid())
	require.True(t, NotEmpty.Validate(1, RootPath).Valid())

	for _, blank := range []any{nil, "", 0, []any{}} {
		res := NotEmpty.Validate(blank, RootPath)
		require.False(t, res.Valid(), "%v should be blank", blank)
		assert.Equal(t, "cannot be blank", res.Errors()[0].Message)
	}
}

func TestNotNil(t *testing.T) {
	require.True(t, NotNil.Validate("", RootPath).Valid()) // zero values allowed
	require.True(t, NotNil.Validate(0, RootPath).Valid())

	res := NotNil.Validate(nil, RootPath)
	require.False(t, res.Valid())
	assert.Equal(t, "cannot be nil", res.Errors()[0].Message)
}

func TestDate(t *testing.T) {
	v := Date("2006-01-02")

	require.True(t, v.Validate("2024-02-29", RootPath).Valid())
	require.True(t, v.Validate("", RootPath).Valid()) // empty passes; pair with NotEmpty

	res := v.Validate("02/29/2024", RootPath)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "must be a valid date in 2006-01-02 format", res.Errors()[0].Message)

	res = v.Validate(20240229, RootPath)
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, "expected type string, got int", res.Errors()[0].Message)
}
