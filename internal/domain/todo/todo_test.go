package todo

import (
	"testing"
	"time"

	"github.com/ymatsuda/todo-backend/internal/domain/user"
)

func newTestTodo(t *testing.T) *Todo {
	t.Helper()

	title, err := NewTitle("Buy groceries")
	if err != nil {
		t.Fatalf("NewTitle() error = %v", err)
	}
	body, err := NewBody("Milk, eggs, bread")
	if err != nil {
		t.Fatalf("NewBody() error = %v", err)
	}
	return New(user.GenerateID(), title, body)
}

func TestNew(t *testing.T) {
	t.Parallel()

	item := newTestTodo(t)

	if item.ID().Value() == "" {
		t.Error("New() produced a zero identifier")
	}
	if item.Status() != StatusNotStarted {
		t.Errorf("Status() = %q, want %q", item.Status(), StatusNotStarted)
	}
	if !item.CreatedAt().Equal(item.UpdatedAt()) {
		t.Errorf("CreatedAt = %v, UpdatedAt = %v, want equal", item.CreatedAt(), item.UpdatedAt())
	}
	if got := item.CreatedAt().Location(); got != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", got)
	}
}

func TestNew_UniqueIdentifiers(t *testing.T) {
	t.Parallel()

	a := newTestTodo(t)
	b := newTestTodo(t)
	if a.ID().Equals(b.ID()) {
		t.Error("two created todos share an identifier")
	}
}

func TestTodo_ChangeTitle(t *testing.T) {
	t.Parallel()

	original := newTestTodo(t)
	newTitle, err := NewTitle("Walk the dog")
	if err != nil {
		t.Fatalf("NewTitle() error = %v", err)
	}

	changed := original.ChangeTitle(newTitle)

	if !changed.Title().Equals(newTitle) {
		t.Errorf("changed.Title() = %q, want %q", changed.Title(), newTitle)
	}
	if original.Title().Value() != "Buy groceries" {
		t.Errorf("receiver mutated: Title() = %q", original.Title())
	}
	if !changed.ID().Equals(original.ID()) {
		t.Error("change produced a different identity")
	}
	if !changed.CreatedAt().Equal(original.CreatedAt()) {
		t.Error("change altered CreatedAt")
	}
	if changed.UpdatedAt().Before(original.UpdatedAt()) {
		t.Error("UpdatedAt moved backwards")
	}
}

func TestTodo_ChangeBody(t *testing.T) {
	t.Parallel()

	original := newTestTodo(t)

	cleared := original.ChangeBody(EmptyBody())
	if !cleared.Body().IsEmpty() {
		t.Error("cleared body is not empty")
	}
	if original.Body().IsEmpty() {
		t.Error("receiver mutated: body cleared")
	}
}

func TestTodo_ChangeStatus(t *testing.T) {
	t.Parallel()

	original := newTestTodo(t)

	changed := original.ChangeStatus(StatusCompleted)
	if changed.Status() != StatusCompleted {
		t.Errorf("changed.Status() = %q, want %q", changed.Status(), StatusCompleted)
	}
	if original.Status() != StatusNotStarted {
		t.Errorf("receiver mutated: Status() = %q", original.Status())
	}
}

func TestTodo_Equals(t *testing.T) {
	t.Parallel()

	item := newTestTodo(t)
	other := newTestTodo(t)

	changed := item.ChangeStatus(StatusCompleted)
	if !item.Equals(changed) {
		t.Error("same identity compares unequal after a change")
	}
	if item.Equals(other) {
		t.Error("distinct identities compare equal")
	}
	if item.Equals(nil) {
		t.Error("Equals(nil) = true, want false")
	}
}

func TestReconstruct_PreservesTimestamps(t *testing.T) {
	t.Parallel()

	title, err := NewTitle("Buy groceries")
	if err != nil {
		t.Fatalf("NewTitle() error = %v", err)
	}
	created := time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	updated := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)

	item := Reconstruct(GenerateID(), user.GenerateID(), title, EmptyBody(), StatusInProgress, created, updated)

	if !item.CreatedAt().Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", item.CreatedAt(), created)
	}
	if !item.UpdatedAt().Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", item.UpdatedAt(), updated)
	}
	if item.Status() != StatusInProgress {
		t.Errorf("Status() = %q, want %q", item.Status(), StatusInProgress)
	}
}

func TestTodo_UpdatedAtNeverMovesBackwards(t *testing.T) {
	t.Parallel()

	title, err := NewTitle("Buy groceries")
	if err != nil {
		t.Fatalf("NewTitle() error = %v", err)
	}
	// Rehydrate with an updatedAt far in the future; a change must clamp
	// rather than regress.
	future := time.Now().UTC().Add(24 * time.Hour)
	item := Reconstruct(GenerateID(), user.GenerateID(), title, EmptyBody(), StatusNotStarted, future, future)

	changed := item.ChangeStatus(StatusCompleted)
	if changed.UpdatedAt().Before(future) {
		t.Errorf("UpdatedAt = %v moved backwards from %v", changed.UpdatedAt(), future)
	}
}
