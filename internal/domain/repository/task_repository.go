package repository

import (
	"context"
	"errors"

	"tasker/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Listing is scoped by owner; single-row lookups return the row regardless
// of owner so the use case can distinguish "absent" from "not yours".
type TaskRepository interface {
	// FindByID retrieves a single task by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// ListByOwner retrieves all tasks belonging to the given user.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Task, error)

	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its unique ID.
	Delete(ctx context.Context, id int64) error
}
