package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{1, true},
		{0, false},
		{int64(1), true},
		{"true", true},
		{"TRUE", true},
		{" yes ", true},
		{"on", true},
		{"1", true},
		{"0", false},
		{"", false},
		{[]byte("true"), true},
		{3.5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBool(tt.in), "%v", tt.in)
	}
}

func TestOptionalUint(t *testing.T) {
	v, err := OptionalUint("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalUint("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), *v)

	for _, bad := range []string{"0", "-1", "abc", "1.5"} {
		_, err = OptionalUint(bad)
		assert.Error(t, err, bad)
	}
}

func TestOptionalDate(t *testing.T) {
	v, err := OptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *v)

	_, err = OptionalDate("14/03/2026")
	assert.Error(t, err)
}
