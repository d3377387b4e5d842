package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/taskboard-api/internal/database"
)

// BunRepository persists tasks in Postgres via bun.
type BunRepository struct {
	db *bun.DB
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// Insert stores a new task, assigning its ID and CreatedAt
func (r *BunRepository) Insert(ctx context.Context, t *Task) (*Task, error) {
	dbTask := &database.Task{
		ID:          uuid.New(),
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.NewInsert().
		Model(dbTask).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// ListByOwner returns the owner's tasks, most recent first
func (r *BunRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	var dbTasks []database.Task
	err := r.db.NewSelect().
		Model(&dbTasks).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *mapDBTaskToModel(&dbTasks[i]))
	}
	return tasks, nil
}

// GetByID retrieves a task by ID
func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	dbTask := new(database.Task)
	err := r.db.NewSelect().
		Model(dbTask).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task by id: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// UpdateByID merge-patches the mutable fields onto the stored record.
// An empty patch degenerates to a read.
func (r *BunRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch *Patch) (*Task, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	dbTask := new(database.Task)
	q := r.db.NewUpdate().
		Model(dbTask).
		Where("id = ?", id).
		Returning("*")

	if patch.Title != nil {
		q = q.Set("title = ?", *patch.Title)
	}
	if patch.Description != nil {
		q = q.Set("description = ?", *patch.Description)
	}
	if patch.Priority != nil {
		q = q.Set("priority = ?", string(*patch.Priority))
	}
	if patch.Status != nil {
		q = q.Set("status = ?", string(*patch.Status))
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBTaskToModel(dbTask), nil
}

// DeleteByID removes a task by ID
func (r *BunRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*database.Task)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBTaskToModel converts database model to domain model
func mapDBTaskToModel(dbt *database.Task) *Task {
	return &Task{
		ID:          dbt.ID,
		OwnerID:     dbt.OwnerID,
		Title:       dbt.Title,
		Description: dbt.Description,
		Priority:    Priority(dbt.Priority),
		Status:      Status(dbt.Status),
		CreatedAt:   dbt.CreatedAt,
	}
}
