package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        email,
		PasswordHash: "$argon2id$...",
		AvatarURL:    AvatarURL("Ann"),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser("ann@x.com"))
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", byID.Email)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestUser("ann@x.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestUser("ann@x.com"))
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

// Lookup is exact-match: casing matters.
func TestMemoryRepository_EmailLookupIsCaseSensitive(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestUser("ann@x.com"))
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "Ann@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_UnknownLookups(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
