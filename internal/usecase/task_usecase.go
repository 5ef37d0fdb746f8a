package usecase

import (
	"context"

	"tasker/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
// New tasks always start with done=false.
type CreateTaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskInput defines the full replacement state for a task.
type UpdateTaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// TaskUsecase defines owner-scoped task operations. Every method takes the
// acting identity; a task owned by someone else fails with
// domainerrors.ErrForbidden and an absent task with domainerrors.ErrTaskNotFound.
type TaskUsecase interface {
	List(ctx context.Context, identity entity.Identity) ([]*entity.Task, error)
	Create(ctx context.Context, identity entity.Identity, input *CreateTaskInput) (*entity.Task, error)
	Update(ctx context.Context, identity entity.Identity, taskID int64, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, identity entity.Identity, taskID int64) error
}
