package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize_Valid(t *testing.T) {
	for _, s := range []string{"XS", "S", "M", "L", "XL"} {
		size, err := ParseSize(s)
		require.NoError(t, err)
		assert.Equal(t, Size(s), size)
		assert.True(t, size.Valid())
		assert.Positive(t, size.Hours())
		assert.Positive(t, size.DefaultCost())
	}
}

func TestParseSize_Invalid(t *testing.T) {
	for _, s := range []string{"", "xs", "XXL", "medium"} {
		_, err := ParseSize(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestSize_UnknownDegradesToZero(t *testing.T) {
	assert.Zero(t, SizeUnspecified.Hours())
	assert.Zero(t, SizeUnspecified.DefaultCost())
	assert.False(t, SizeUnspecified.Valid())
}
