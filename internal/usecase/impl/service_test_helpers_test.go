package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"tasker/config"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:                   "test_secret_key_very_long_for_testing",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
	}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // MinCost keeps tests fast

	return cfg
}

func newTestUser(username string) *entity.User {
	return &entity.User{Username: username, PasswordHash: "$2a$04$placeholderplaceholderpl"}
}

// memUserRepo is an in-memory UserRepository with the same uniqueness
// semantics as the postgres implementation.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u

	return &copied, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		// Mirrors the unique-constraint backstop of the real store.
		return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
	}

	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.Username] = &copied

	return nil
}

// blindUserRepo hides existing rows from the pre-check lookup so tests can
// drive the concurrent-registration race into the constraint backstop.
type blindUserRepo struct {
	*memUserRepo
}

func (r *blindUserRepo) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

// memTaskRepo is an in-memory TaskRepository.
type memTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int64]*entity.Task)}
}

func (r *memTaskRepo) FindByID(_ context.Context, id int64) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	copied := *t

	return &copied, nil
}

func (r *memTaskRepo) ListByOwner(_ context.Context, ownerID int64) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Task
	for id := int64(1); id <= r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.OwnerID == ownerID {
			copied := *t
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID
	copied := *task
	r.tasks[task.ID] = &copied

	return nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied

	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)

	return nil
}

// memTxManager satisfies TransactionManager without real transactions; the
// in-memory repositories are already atomic per operation.
type memTxManager struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *memTxManager) NewUserRepository() repository.UserRepository { return m.userRepo }
func (m *memTxManager) NewTaskRepository() repository.TaskRepository { return m.taskRepo }
