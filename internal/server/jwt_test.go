package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/stylesense/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          testJWTSecret,
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken("ada@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3, "JWT should have 3 parts separated by dots")

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "ada@example.com", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.GetEmail())
}

func TestJWTService_GenerateToken_EmptyEmail(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.GenerateToken("")
	assert.Error(t, err)
}

func TestJWTService_Expiration(t *testing.T) {
	service := setupTestJWTService(t, 2)
	issued := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken("ada@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(2*time.Hour), claims.ExpiresAt.Time.UTC())

	service.now = func() time.Time { return issued.Add(3 * time.Hour) }
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	service := setupTestJWTService(t, 24)
	valid, err := service.GenerateToken("ada@example.com")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "a-different-secret-of-sufficient-size", ExpirationHours: 24})
	foreign, err := other.GenerateToken("ada@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Email: "ada@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: foreign},
		{name: "tampered", token: valid + "x"},
		{name: "alg none", token: noneToken},
		{name: "no email claim", token: noEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 24)
	token, err := service.GenerateToken("grace@example.com")
	require.NoError(t, err)

	got, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", got.GetEmail())

	_, err = service.AsTokenValidator().ValidateToken("bogus")
	assert.Error(t, err)
}
