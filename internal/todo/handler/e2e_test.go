package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/VeerKakar17/calendar-todo-list/config"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/domain"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/dto"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/handler"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore is a minimal in-process stand-in for the database, enough to
// run the full register/login/task flow end to end.
type memoryStore struct {
	mu    sync.Mutex
	users []domain.User
	tasks []domain.Task
}

type memoryUserRepo struct{ store *memoryStore }

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *memoryUserRepo) find(match func(domain.User) bool) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.users {
		if match(r.store.users[i]) {
			user := r.store.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) GetByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == identifier || u.Email == identifier })
}

type memoryTaskRepo struct{ store *memoryStore }

func (r *memoryTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tasks = append(r.store.tasks, *task)
	return nil
}

func (r *memoryTaskRepo) ListByOwner(_ context.Context, userID string) ([]domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var owned []domain.Task
	for _, task := range r.store.tasks {
		if task.UserID == userID {
			owned = append(owned, task)
		}
	}
	return owned, nil
}

func newEndToEndApp(t *testing.T) *fiber.App {
	t.Helper()

	store := &memoryStore{}
	userRepo := &memoryUserRepo{store: store}
	taskRepo := &memoryTaskRepo{store: store}

	cfg := &config.Config{
		AccessExpiryMin:  30,
		RefreshExpiryMin: 3 * 24 * 60,
		CookieSameSite:   "Lax",
	}

	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	codec := service.NewTokenService("e2e-test-secret", "v1", cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	sessions := service.NewSessionService(codec)
	userService := service.NewUserService(userRepo, hasher, codec)
	taskService := service.NewTaskService(taskRepo, userRepo)

	cookies := handler.NewCookieWriter(cfg)
	authHandler := handler.NewAuthHandler(userService, cookies)
	taskHandler := handler.NewTaskHandler(taskService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, taskHandler, handler.RequireSession(sessions, cookies))

	return app
}

func TestEndToEnd_RegisterLoginCreateList(t *testing.T) {
	app := newEndToEndApp(t)

	// Register.
	resp, err := app.Test(postJSON(t, "/users", dto.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var registered dto.UserOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&registered))
	require.NotEmpty(t, registered.ID)

	// Duplicate email registers Conflict even under a different username.
	resp, err = app.Test(postJSON(t, "/users", dto.RegisterInput{
		Username: "alice2",
		Email:    "alice@x.com",
		Password: "pw",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Login and capture the cookie pair.
	resp, err = app.Test(postJSON(t, "/login", dto.LoginInput{Username: "alice", Password: "pw"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sessionCookies := resp.Cookies()
	require.Len(t, sessionCookies, 2)

	withSession := func(req *http.Request) *http.Request {
		for _, c := range sessionCookies {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
		return req
	}

	// Create a task with the session cookies.
	resp, err = app.Test(withSession(postJSON(t, "/tasks", dto.CreateTaskInput{
		Text:      "buy milk",
		DueDate:   "2024-01-01",
		TaskType:  "chore",
		TaskClass: "personal",
	})))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created dto.TaskOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, registered.ID, created.UserID)
	assert.Equal(t, "buy milk", created.Text)

	// The list holds exactly that one task.
	resp, err = app.Test(withSession(httptest.NewRequest(http.MethodGet, "/tasks", nil)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []dto.TaskOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// And the session answers for alice no matter what user_id says.
	resp, err = app.Test(withSession(httptest.NewRequest(http.MethodGet, "/users?user_id=other", nil)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me dto.UserOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, registered.ID, me.ID)
}
