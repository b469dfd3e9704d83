package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("hunter2")
	require.NoError(t, err)
	h2, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, Init())

	token, err := CreateJWT("user-123")
	require.NoError(t, err)

	userID, err := AuthenticateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, Init())

	_, err := AuthenticateJWT("not-a-token")
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "-1m")
	require.NoError(t, Init())

	token, err := CreateJWT("user-123")
	require.NoError(t, err)

	_, err = AuthenticateJWT(token)
	assert.Error(t, err)
}

func TestInitRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, Init())
}

func TestTokenTTLDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL", "")
	assert.Equal(t, 30*time.Minute, tokenTTL())

	t.Setenv("TOKEN_TTL", "2h")
	assert.Equal(t, 2*time.Hour, tokenTTL())

	t.Setenv("TOKEN_TTL", "soon")
	assert.Equal(t, DefaultTokenTTL, tokenTTL())
}
