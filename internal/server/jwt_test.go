package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-match/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken("session-abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", claims.SessionKey)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateEmptyToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken("session-abc")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	// A negative expiration puts ExpiresAt in the past.
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: -1})

	token, err := svc.GenerateToken("session-abc")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
