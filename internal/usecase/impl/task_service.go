package impl

import (
	"context"
	"log/slog"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all tasks belonging to the acting identity.
func (srv *taskService) List(ctx context.Context, identity entity.Identity) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Int64("userID", identity.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Create persists a new task owned by the acting identity.
func (srv *taskService) Create(ctx context.Context, identity entity.Identity, input *usecase.CreateTaskInput) (*entity.Task, error) {
	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Done:        false,
		OwnerID:     identity.UserID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Int64("userID", identity.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Int64("taskID", task.ID), slog.Int64("userID", identity.UserID))

	return task, nil
}

// Update replaces a task's title, description and done flag.
// An absent task fails with ErrTaskNotFound; a task owned by another user
// fails with ErrForbidden.
func (srv *taskService) Update(ctx context.Context, identity entity.Identity, taskID int64, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.loadOwnedTask(ctx, identity, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Done = input.Done

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to update task", slog.Int64("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

// Delete removes a task, subject to the same ownership gate as Update.
func (srv *taskService) Delete(ctx context.Context, identity entity.Identity, taskID int64) error {
	if _, err := srv.loadOwnedTask(ctx, identity, taskID); err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, taskID); err != nil {
		srv.log(ctx).Error("Failed to delete task", slog.Int64("taskID", taskID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("taskID", taskID), slog.Int64("userID", identity.UserID))

	return nil
}

// loadOwnedTask fetches a task and enforces the owner-scoped gate.
func (srv *taskService) loadOwnedTask(ctx context.Context, identity entity.Identity, taskID int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task does not exist")
		}

		return nil, errors.Wrap(err, "failed to load task")
	}

	if task.OwnerID != identity.UserID {
		srv.log(ctx).Warn("Ownership violation",
			slog.Int64("taskID", taskID),
			slog.Int64("ownerID", task.OwnerID),
			slog.Int64("userID", identity.UserID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "task belongs to another user")
	}

	return task, nil
}
