package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. The password hash never leaves this package's
// repositories except to the auth service for verification; it is excluded
// from JSON.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
}
