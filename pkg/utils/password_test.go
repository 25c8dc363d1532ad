package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("12345")
	require.NoError(t, err)
	require.NotEqual(t, "12345", hash)

	assert.True(t, CheckPasswordHash("12345", hash))
	assert.False(t, CheckPasswordHash("54321", hash))
}
