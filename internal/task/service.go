package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrForbidden     = errors.New("task belongs to another user")
)

// Service is the access-controlled task API. Every operation is scoped to
// an owner identity that the caller resolved from a verified token; the
// service never trusts owner information from request payloads.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the caller's tasks, most recent first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create validates the draft, applies defaults and stores a new task
// owned by the caller.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, draft Draft) (*Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, ErrTitleRequired
	}

	if draft.Priority == "" {
		draft.Priority = PriorityMedium
	}
	if draft.Status == "" {
		draft.Status = StatusTodo
	}

	created, err := s.repo.Insert(ctx, &Task{
		OwnerID:     ownerID,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      draft.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// Update merge-patches a task the caller owns. A missing id fails
// ErrNotFound before ownership is considered; a task owned by someone
// else fails ErrForbidden and stays untouched. Title emptiness is only
// validated at creation, not on patch.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, patch *Patch) (*Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	updated, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return updated, nil
}

// Delete removes a task the caller owns, with the same ownership rules
// as Update.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
