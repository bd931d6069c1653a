package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleOperator is the role claim that grants the moderation capability.
const RoleOperator = "operator"

// Claims defines the custom claims for operator tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the external auth collaborator.
// The catalog only cares whether a token carries the operator role.
type TokenService interface {
	// GenerateOperatorToken issues a token for subject with the given roles. Used by tooling and tests.
	GenerateOperatorToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
