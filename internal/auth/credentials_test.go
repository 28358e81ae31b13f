package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableDigest(t *testing.T) {
	digest, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	match, err := VerifyPassword("hunter2", digest)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyPassword("hunter3", digest)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashPassword_DigestsAreSalted(t *testing.T) {
	first, err := HashPassword("hunter2")
	require.NoError(t, err)

	second, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_RejectsMalformedDigest(t *testing.T) {
	_, err := VerifyPassword("hunter2", "not-a-digest")
	assert.Error(t, err)
}
