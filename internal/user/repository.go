package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Repository is the identity store contract. Two adapters exist: a bun/
// Postgres one and an in-memory one; both enforce email uniqueness with
// exact-match (case-sensitive) comparison.
type Repository interface {
	// Create persists a new user. ID, AvatarURL and CreatedAt must already
	// be set by the caller. Returns ErrDuplicateEmail on a taken email.
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
