package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/ymatsuda/todo-backend/internal/adapters/http"
	"github.com/ymatsuda/todo-backend/internal/adapters/http/handlers"
	"github.com/ymatsuda/todo-backend/internal/ports"
	"github.com/ymatsuda/todo-backend/mocks"
)

type testRouterDeps struct {
	users  *mocks.MockUserService
	todos  *mocks.MockTodoService
	health *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testRouterDeps) {
	t.Helper()

	deps := testRouterDeps{
		users:  mocks.NewMockUserService(t),
		todos:  mocks.NewMockTodoService(t),
		health: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(
		handlers.NewUserHandler(deps.users),
		handlers.NewTodoHandler(deps.todos),
		handlers.NewHealthHandler(deps.health),
		middlewares...,
	)
	return router, deps
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/users"},
		{http.MethodGet, "/api/v1/users/{id}"},
		{http.MethodPatch, "/api/v1/users/{id}"},
		{http.MethodDelete, "/api/v1/users/{id}"},
		{http.MethodPost, "/api/v1/todos"},
		{http.MethodGet, "/api/v1/todos/{id}"},
		{http.MethodPatch, "/api/v1/todos/{id}"},
		{http.MethodDelete, "/api/v1/todos/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, deps := newTestRouter(t, testMW)

	deps.health.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationGetTodo(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	todoID := "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e01"
	deps.todos.EXPECT().GetTodo(mock.Anything, todoID).Return(&ports.TodoResult{
		ID:     todoID,
		UserID: "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e02",
		Title:  "Buy groceries",
		Status: "NOT_STARTED",
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/"+todoID, nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/todos", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
