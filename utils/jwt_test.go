package utils

import (
	"testing"
	"time"

	"eventparadise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "alice@example.com", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "alice@example.com", "user", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "alice@example.com", "user", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token + "x")
	assert.Error(t, err)
}
