package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	plain := "Password123!"

	h1, err := HashPassword(plain)
	require.NoError(t, err)
	h2, err := HashPassword(plain)
	require.NoError(t, err)

	assert.NotEqual(t, plain, h1, "digest must not equal the plaintext")
	assert.NotEqual(t, h1, h2, "per-call salt must produce distinct digests")
}

func TestCompareHashAndPassword(t *testing.T) {
	t.Parallel()

	plain := "Password123!"
	hash, err := HashPassword(plain)
	require.NoError(t, err)

	assert.True(t, CompareHashAndPassword(hash, plain))
	assert.False(t, CompareHashAndPassword(hash, "wrongpassword"))
}

func TestCompareHashAndPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CompareHashAndPassword("not-a-bcrypt-digest", "whatever"))
	assert.False(t, CompareHashAndPassword("", "whatever"))
}
