package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "tenant-1", "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "tenant-1", claims.TenantID)
	require.Equal(t, "owner@example.com", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	token, err := m.GenerateAccessToken("user-1", "tenant-1", "owner@example.com")
	require.NoError(t, err)

	other := NewJWTManager("other-secret", time.Minute)
	_, err = other.ParseAndValidate(token)
	require.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, err := m.GenerateAccessToken("user-1", "tenant-1", "owner@example.com")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	require.Error(t, err)
}
