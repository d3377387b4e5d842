package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_InsertAssignsIDAndCreatedAt(t *testing.T) {
	repo := NewMemoryRepository()

	created, err := repo.Insert(context.Background(), &Task{
		OwnerID:  uuid.New(),
		Title:    "t",
		Priority: PriorityMedium,
		Status:   StatusTodo,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.False(t, created.CreatedAt.IsZero())
}

func TestMemoryRepository_ListByOwnerOrdersDescending(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, &Task{OwnerID: owner, Title: title})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	tasks, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "c", tasks[0].Title)
	require.Equal(t, "a", tasks[2].Title)
	require.True(t, tasks[0].CreatedAt.After(tasks[2].CreatedAt))
}

func TestMemoryRepository_UpdateIgnoresImmutableFields(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &Task{OwnerID: uuid.New(), Title: "orig"})
	require.NoError(t, err)

	title := "patched"
	updated, err := repo.UpdateByID(ctx, created.ID, &Patch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "patched", updated.Title)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.OwnerID, updated.OwnerID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryRepository_EmptyPatchIsARead(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &Task{OwnerID: uuid.New(), Title: "same"})
	require.NoError(t, err)

	updated, err := repo.UpdateByID(ctx, created.ID, &Patch{})
	require.NoError(t, err)
	require.Equal(t, created, updated)
}

func TestMemoryRepository_GetAndDeleteUnknownID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)

	err = repo.DeleteByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_DeleteRemovesRecord(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &Task{OwnerID: uuid.New(), Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

// Returned records are copies; mutating them must not leak into the store.
func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &Task{OwnerID: uuid.New(), Title: "stable"})
	require.NoError(t, err)

	created.Title = "mutated"

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "stable", stored.Title)
}
