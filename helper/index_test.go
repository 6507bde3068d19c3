package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.True(t, ValidEmail("owner+tag@resort.local"))

	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("no-at-sign"))
	assert.False(t, ValidEmail("trailing@"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("changeme")
	require.NoError(t, err)
	require.NotEqual(t, "changeme", hash)

	assert.True(t, CheckPasswordHash("changeme", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
