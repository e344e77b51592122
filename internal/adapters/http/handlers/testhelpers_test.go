package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ymatsuda/todo-backend/internal/ports"
)

const (
	testTodoID = "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e01"
	testUserID = "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e02"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTodoResult() *ports.TodoResult {
	return &ports.TodoResult{
		ID:        testTodoID,
		UserID:    testUserID,
		Title:     "Buy groceries",
		Body:      "Milk, eggs, bread",
		Status:    "NOT_STARTED",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validUserResult() *ports.UserResult {
	return &ports.UserResult{
		ID:        testUserID,
		Email:     "alice@example.com",
		Name:      "alice",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
