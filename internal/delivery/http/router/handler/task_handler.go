package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tasker/internal/delivery/http/middleware"
	"tasker/internal/delivery/http/response"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// taskResponse is the outward representation of a task.
type taskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Done:        task.Done,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// List returns every task owned by the caller.
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.List(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	// Empty list renders as [], not null.
	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, out, "Tasks retrieved successfully")
}

// Create creates a new task owned by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	task, err := h.uc.Create(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// Update replaces the title, description and done flag of an owned task.
func (h *TaskHandler) Update(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return err
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	task, err := h.uc.Update(c.Request().Context(), identity, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// Delete removes an owned task.
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return err
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), identity, taskID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}

func parseTaskID(c echo.Context) (int64, error) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("task id must be an integer")
	}

	return taskID, nil
}
