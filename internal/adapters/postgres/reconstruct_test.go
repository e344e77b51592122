package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/ymatsuda/todo-backend/internal/domain"
)

const (
	storedTodoID = "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e01"
	storedUserID = "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e02"
)

var (
	storedCreatedAt = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	storedUpdatedAt = time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)
)

func TestReconstructTodo(t *testing.T) {
	t.Parallel()

	item, err := reconstructTodo(storedTodoID, storedUserID,
		"Buy groceries", "Milk, eggs, bread", "IN_PROGRESS",
		storedCreatedAt, storedUpdatedAt)
	if err != nil {
		t.Fatalf("reconstructTodo() error = %v, want nil", err)
	}

	if item.ID().Value() != storedTodoID {
		t.Errorf("ID = %q, want %q", item.ID().Value(), storedTodoID)
	}
	if item.UserID().Value() != storedUserID {
		t.Errorf("UserID = %q, want %q", item.UserID().Value(), storedUserID)
	}
	if item.Body().Value() != "Milk, eggs, bread" {
		t.Errorf("Body = %q", item.Body().Value())
	}
	if !item.CreatedAt().Equal(storedCreatedAt) || !item.UpdatedAt().Equal(storedUpdatedAt) {
		t.Errorf("timestamps = %v/%v, want stored values round-tripped",
			item.CreatedAt(), item.UpdatedAt())
	}
}

func TestReconstructTodo_EmptyBodyColumn(t *testing.T) {
	t.Parallel()

	item, err := reconstructTodo(storedTodoID, storedUserID,
		"Buy groceries", "", "NOT_STARTED", storedCreatedAt, storedUpdatedAt)
	if err != nil {
		t.Fatalf("reconstructTodo() error = %v, want nil", err)
	}
	if !item.Body().IsEmpty() {
		t.Error("empty column did not map to the empty body")
	}
}

func TestReconstructTodo_CorruptColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func() (string, string, string, string, string)
	}{
		{
			name: "bad todo id",
			mutate: func() (string, string, string, string, string) {
				return "not-a-uuid", storedUserID, "Buy groceries", "", "NOT_STARTED"
			},
		},
		{
			name: "bad user id",
			mutate: func() (string, string, string, string, string) {
				return storedTodoID, "not-a-uuid", "Buy groceries", "", "NOT_STARTED"
			},
		},
		{
			name: "bad status",
			mutate: func() (string, string, string, string, string) {
				return storedTodoID, storedUserID, "Buy groceries", "", "CANCELLED"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, userID, title, body, status := tt.mutate()
			_, err := reconstructTodo(id, userID, title, body, status,
				storedCreatedAt, storedUpdatedAt)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("reconstructTodo() error = %v, want wrapped ErrValidation", err)
			}
		})
	}
}

func TestReconstructUser(t *testing.T) {
	t.Parallel()

	u, err := reconstructUser(storedUserID, "alice@example.com", "alice",
		storedCreatedAt, storedUpdatedAt)
	if err != nil {
		t.Fatalf("reconstructUser() error = %v, want nil", err)
	}

	if u.ID().Value() != storedUserID {
		t.Errorf("ID = %q, want %q", u.ID().Value(), storedUserID)
	}
	if u.Email().Value() != "alice@example.com" {
		t.Errorf("Email = %q", u.Email().Value())
	}
	if !u.CreatedAt().Equal(storedCreatedAt) || !u.UpdatedAt().Equal(storedUpdatedAt) {
		t.Errorf("timestamps = %v/%v, want stored values round-tripped",
			u.CreatedAt(), u.UpdatedAt())
	}
}

func TestReconstructUser_CorruptColumns(t *testing.T) {
	t.Parallel()

	if _, err := reconstructUser("not-a-uuid", "alice@example.com", "alice",
		storedCreatedAt, storedUpdatedAt); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad id: error = %v, want wrapped ErrValidation", err)
	}
	if _, err := reconstructUser(storedUserID, "not-an-address", "alice",
		storedCreatedAt, storedUpdatedAt); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad email: error = %v, want wrapped ErrValidation", err)
	}
}
