package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/usecase"
)

var (
	alice = entity.Identity{UserID: 1, Username: "alice"}
	bob   = entity.Identity{UserID: 2, Username: "bob"}
)

func newTaskService(tasks *memTaskRepo) usecase.TaskUsecase {
	return NewTaskService(TaskServiceParams{
		TaskRepo: tasks,
		Logger:   newDiscardLogger(),
	})
}

func TestTaskServiceCreate(t *testing.T) {
	ctx := context.Background()
	srv := newTaskService(newMemTaskRepo())

	task, err := srv.Create(ctx, alice, &usecase.CreateTaskInput{Title: "buy milk", Description: "2 liters"})
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, "2 liters", task.Description)
	assert.False(t, task.Done)
	assert.Equal(t, alice.UserID, task.OwnerID)
}

func TestTaskServiceList(t *testing.T) {
	ctx := context.Background()
	srv := newTaskService(newMemTaskRepo())

	t.Run("empty store yields empty list", func(t *testing.T) {
		tasks, err := srv.List(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("only the caller's tasks are returned", func(t *testing.T) {
		first, err := srv.Create(ctx, alice, &usecase.CreateTaskInput{Title: "alice one"})
		require.NoError(t, err)
		second, err := srv.Create(ctx, alice, &usecase.CreateTaskInput{Title: "alice two"})
		require.NoError(t, err)
		_, err = srv.Create(ctx, bob, &usecase.CreateTaskInput{Title: "bob one"})
		require.NoError(t, err)

		tasks, err := srv.List(ctx, alice)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, first.ID, tasks[0].ID)
		assert.Equal(t, second.ID, tasks[1].ID)
	})
}

func TestTaskServiceUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (usecase.TaskUsecase, *entity.Task) {
		srv := newTaskService(newMemTaskRepo())
		task, err := srv.Create(ctx, alice, &usecase.CreateTaskInput{Title: "draft", Description: "v1"})
		require.NoError(t, err)

		return srv, task
	}

	t.Run("replaces title description and done", func(t *testing.T) {
		srv, task := setup(t)

		updated, err := srv.Update(ctx, alice, task.ID, &usecase.UpdateTaskInput{
			Title:       "final",
			Description: "v2",
			Done:        true,
		})
		require.NoError(t, err)
		assert.Equal(t, task.ID, updated.ID)
		assert.Equal(t, "final", updated.Title)
		assert.Equal(t, "v2", updated.Description)
		assert.True(t, updated.Done)
	})

	t.Run("done can be reset to false", func(t *testing.T) {
		srv, task := setup(t)

		_, err := srv.Update(ctx, alice, task.ID, &usecase.UpdateTaskInput{Title: "final", Done: true})
		require.NoError(t, err)

		updated, err := srv.Update(ctx, alice, task.ID, &usecase.UpdateTaskInput{Title: "final", Done: false})
		require.NoError(t, err)
		assert.False(t, updated.Done)
	})

	t.Run("unknown task id", func(t *testing.T) {
		srv, _ := setup(t)

		_, err := srv.Update(ctx, alice, 999, &usecase.UpdateTaskInput{Title: "ghost"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	})

	t.Run("another owner's task is forbidden", func(t *testing.T) {
		srv, task := setup(t)

		_, err := srv.Update(ctx, bob, task.ID, &usecase.UpdateTaskInput{Title: "stolen"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestTaskServiceDelete(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (usecase.TaskUsecase, *entity.Task) {
		srv := newTaskService(newMemTaskRepo())
		task, err := srv.Create(ctx, alice, &usecase.CreateTaskInput{Title: "temp"})
		require.NoError(t, err)

		return srv, task
	}

	t.Run("removes the task", func(t *testing.T) {
		srv, task := setup(t)

		require.NoError(t, srv.Delete(ctx, alice, task.ID))

		tasks, err := srv.List(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("unknown task id", func(t *testing.T) {
		srv, _ := setup(t)

		err := srv.Delete(ctx, alice, 999)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	})

	t.Run("another owner's task is forbidden", func(t *testing.T) {
		srv, task := setup(t)

		err := srv.Delete(ctx, bob, task.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		tasks, err := srv.List(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})
}
