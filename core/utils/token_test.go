package utils

import (
	"testing"
	"time"

	"meetbrief-api/core/config"
	apperrors "meetbrief-api/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	config.SetForTest(cfg)
}

func TestGenerateAndValidateToken(t *testing.T) {
	tokenTestConfig(t)

	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@acme.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, data.UserID)
	assert.Equal(t, "alice@acme.com", data.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), data.Expiry, time.Minute)
}

func TestValidateToken_Expired(t *testing.T) {
	tokenTestConfig(t)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateAndParseToken(stale)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrTokenExpired, appErr.Code)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenTestConfig(t)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	_, err = ValidateAndParseToken(forged)
	require.Error(t, err)
}

func TestDecodeExpiryUnverified(t *testing.T) {
	// Foreign token with a signature we cannot verify.
	exp := time.Now().Add(45 * time.Minute)
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("somebody-elses-secret"))
	require.NoError(t, err)

	got, err := DecodeExpiryUnverified(foreign)
	require.NoError(t, err)
	assert.WithinDuration(t, exp, got, time.Second)

	_, err = DecodeExpiryUnverified("not-a-jwt")
	assert.Error(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("x"))
	require.NoError(t, err)
	_, err = DecodeExpiryUnverified(noExp)
	assert.Error(t, err)
}
