package task

import (
	"time"

	"github.com/google/uuid"
)

// Priority levels. Stored as strings; unknown values are passed through
// unvalidated (free-form by design, matching status).
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status values. Transitions are unconstrained; any value is accepted on
// update.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Task is a single to-do item owned by exactly one user. OwnerID is fixed
// at creation and can never be reassigned. JSON field names follow the
// frontend contract (camelCase, owner exposed as userId).
type Task struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Draft is the creation payload. Any owner field a client injects is
// discarded; ownership always comes from the authenticated identity.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// Patch carries merge-patch semantics: nil fields are left untouched,
// non-nil fields overwrite. ID, owner and creation time are deliberately
// not representable here.
type Patch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *Priority `json:"priority"`
	Status      *Status   `json:"status"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.Status == nil
}

// Apply merges the patch onto t, touching only the mutable fields.
func (p *Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
