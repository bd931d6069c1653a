package auth

import (
	"testing"
	"time"

	"cafemap/config"
	"cafemap/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Operator = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t, "test_operator_secret_key_very_long_for_testing")

	token, err := svc.GenerateOperatorToken("moderator-1", []string{service.RoleOperator}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "moderator-1", claims.Subject)
	assert.Equal(t, []string{service.RoleOperator}, claims.Roles)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestService(t, "right_secret")
	other := newTestService(t, "wrong_secret")

	foreign, err := other.GenerateOperatorToken("x", []string{service.RoleOperator}, time.Hour)
	require.NoError(t, err)

	expired, err := svc.GenerateOperatorToken("x", []string{service.RoleOperator}, -time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("right_secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.string"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "no expiry", token: noExpiry},
		{name: "none algorithm", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}
