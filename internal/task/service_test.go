package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func strPtr(s string) *string          { return &s }
func priorityPtr(p Priority) *Priority { return &p }
func statusPtr(s Status) *Status       { return &s }

func TestCreate_AppliesDefaults(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, Draft{Title: "Buy milk"})
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, owner, created.OwnerID)
	require.Equal(t, "Buy milk", created.Title)
	require.Equal(t, "", created.Description)
	require.Equal(t, PriorityMedium, created.Priority)
	require.Equal(t, StatusTodo, created.Status)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCreate_OwnerComesFromIdentityOnly(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()

	// Draft carries no owner field at all; whatever a client injects in
	// the JSON body is dropped at decode time. The service stamps the
	// resolved identity.
	created, err := svc.Create(context.Background(), owner, Draft{Title: "x"})
	require.NoError(t, err)
	require.Equal(t, owner, created.OwnerID)
}

func TestCreate_EmptyTitleFails(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()
	ctx := context.Background()

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(ctx, owner, Draft{Title: title})
		require.ErrorIs(t, err, ErrTitleRequired)
	}

	// Nothing was persisted.
	tasks, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestList_MostRecentFirst(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, owner, Draft{Title: title})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	tasks, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "third", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
	require.Equal(t, "first", tasks[2].Title)
}

func TestList_ScopedToOwner(t *testing.T) {
	svc := newTestService()
	userA := uuid.New()
	userB := uuid.New()
	ctx := context.Background()

	_, err := svc.Create(ctx, userA, Draft{Title: "mine"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userB, Draft{Title: "theirs"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, userA)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "mine", tasks[0].Title)
}

func TestUpdate_MergePatch(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, Draft{Title: "Buy milk", Description: "2 liters"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, &Patch{Status: statusPtr(StatusCompleted)})
	require.NoError(t, err)

	// Only the patched field changed.
	require.Equal(t, StatusCompleted, updated.Status)
	require.Equal(t, "Buy milk", updated.Title)
	require.Equal(t, "2 liters", updated.Description)
	require.Equal(t, created.Priority, updated.Priority)

	// Identity fields are immutable.
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.OwnerID, updated.OwnerID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

// Title emptiness is only validated at creation; a patch may blank it.
func TestUpdate_EmptyTitleAllowed(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, Draft{Title: "soon gone"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, &Patch{Title: strPtr("")})
	require.NoError(t, err)
	require.Equal(t, "", updated.Title)
}

func TestUpdate_NotOwnerFails(t *testing.T) {
	svc := newTestService()
	userA := uuid.New()
	userB := uuid.New()
	ctx := context.Background()

	owned, err := svc.Create(ctx, userB, Draft{Title: "B's task"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, userA, owned.ID, &Patch{Title: strPtr("hijacked")})
	require.ErrorIs(t, err, ErrForbidden)

	// B's task is unchanged.
	tasks, err := svc.List(ctx, userB)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "B's task", tasks[0].Title)
}

func TestUpdate_UnknownIDFails(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &Patch{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotOwnerFails(t *testing.T) {
	svc := newTestService()
	userA := uuid.New()
	userB := uuid.New()
	ctx := context.Background()

	owned, err := svc.Create(ctx, userB, Draft{Title: "B's task"})
	require.NoError(t, err)

	err = svc.Delete(ctx, userA, owned.ID)
	require.ErrorIs(t, err, ErrForbidden)

	tasks, err := svc.List(ctx, userB)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestDelete_UnknownIDFails(t *testing.T) {
	svc := newTestService()

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

// Full lifecycle: register-like identity, create, list, complete, delete.
func TestLifecycle(t *testing.T) {
	svc := newTestService()
	ann := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, ann, Draft{Title: "Buy milk"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, ann)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, StatusTodo, tasks[0].Status)
	require.Equal(t, PriorityMedium, tasks[0].Priority)
	require.Equal(t, ann, tasks[0].OwnerID)

	_, err = svc.Update(ctx, ann, created.ID, &Patch{Status: statusPtr(StatusCompleted)})
	require.NoError(t, err)

	tasks, err = svc.List(ctx, ann)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, tasks[0].Status)
	require.Equal(t, "Buy milk", tasks[0].Title)

	err = svc.Delete(ctx, ann, created.ID)
	require.NoError(t, err)

	tasks, err = svc.List(ctx, ann)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestCreate_PreservesExplicitPriorityAndStatus(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, Draft{
		Title:    "urgent",
		Priority: PriorityHigh,
		Status:   StatusInProgress,
	})
	require.NoError(t, err)
	require.Equal(t, PriorityHigh, created.Priority)
	require.Equal(t, StatusInProgress, created.Status)

	updated, err := svc.Update(context.Background(), owner, created.ID, &Patch{Priority: priorityPtr(PriorityLow)})
	require.NoError(t, err)
	require.Equal(t, PriorityLow, updated.Priority)
	require.Equal(t, StatusInProgress, updated.Status)
}
