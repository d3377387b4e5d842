package task

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is the in-process task store adapter. Safe for
// concurrent use; last write wins on concurrent patches to one record.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[uuid.UUID]*Task)}
}

func (r *MemoryRepository) Insert(_ context.Context, t *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *t
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	r.tasks[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]Task, 0)
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			tasks = append(tasks, *t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.tasks[id]
	if !exists {
		return nil, ErrNotFound
	}

	out := *t
	return &out, nil
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id uuid.UUID, patch *Patch) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.tasks[id]
	if !exists {
		return nil, ErrNotFound
	}

	patch.Apply(t)

	out := *t
	return &out, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return ErrNotFound
	}

	delete(r.tasks, id)
	return nil
}
