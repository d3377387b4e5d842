package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("task not found")

// Repository is the task store contract, implemented by the bun/Postgres
// and in-memory adapters.
type Repository interface {
	// Insert stores a new task, assigning its ID and CreatedAt.
	Insert(ctx context.Context, t *Task) (*Task, error)
	// ListByOwner returns the owner's tasks ordered by CreatedAt
	// descending (most recent first).
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	// UpdateByID merge-patches the mutable fields and returns the updated
	// record. ID, OwnerID and CreatedAt are never altered.
	UpdateByID(ctx context.Context, id uuid.UUID, patch *Patch) (*Task, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
