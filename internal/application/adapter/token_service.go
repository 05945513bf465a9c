// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims represents validated claims extracted from a bearer token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService verifies bearer tokens issued by the external identity
// provider. This backend never issues or refreshes tokens itself.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
