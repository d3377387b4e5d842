package auth

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the contract for session token issuance and
// verification. PasetoService is the production implementation.
type TokenService interface {
	CreateToken(userID uuid.UUID, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}
