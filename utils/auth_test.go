package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse123", hash)

	assert.True(t, CheckPassword("motdepasse123", hash))
	assert.False(t, CheckPassword("mauvais", hash))
	assert.False(t, CheckPassword("motdepasse123", "pas-un-hash"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("user-42", "marie@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
	assert.Equal(t, "marie@example.com", email)
}

func TestValidateAccessTokenInvalide(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, _, err := ValidateAccessToken("pas.un.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = ValidateAccessToken("")
	assert.Error(t, err)
}

func TestValidateAccessTokenMauvaisSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, _, err = ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRefreshToken(t *testing.T) {
	t1, err := GenerateRefreshToken()
	require.NoError(t, err)
	t2, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.Len(t, t1, 64)
	assert.NotEqual(t, t1, t2)
}
