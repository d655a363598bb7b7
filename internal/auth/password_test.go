package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	for _, password := range []string{"secret123", "p@ssw0rd!", "пароль日本語"} {
		hash, err := HashPassword(password)
		require.NoError(t, err)

		assert.True(t, CheckPassword(password, hash))
		assert.False(t, CheckPassword(password+"x", hash))
		assert.False(t, CheckPassword("", hash))
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, strings.HasPrefix(h1, "$2"))
	assert.NotContains(t, h1, "secret123")
}
