package user

import (
	"testing"
	"time"
)

func newTestUser(t *testing.T) *User {
	t.Helper()

	email, err := NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	name, err := NewUsername("alice")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}
	return New(email, name)
}

func TestNew(t *testing.T) {
	t.Parallel()

	u := newTestUser(t)

	if u.ID().Value() == "" {
		t.Error("New() produced a zero identifier")
	}
	if !u.CreatedAt().Equal(u.UpdatedAt()) {
		t.Errorf("CreatedAt = %v, UpdatedAt = %v, want equal", u.CreatedAt(), u.UpdatedAt())
	}
	if got := u.CreatedAt().Location(); got != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", got)
	}
}

func TestUser_ChangeEmail(t *testing.T) {
	t.Parallel()

	original := newTestUser(t)
	newEmail, err := NewEmail("bob@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}

	changed := original.ChangeEmail(newEmail)

	if !changed.Email().Equals(newEmail) {
		t.Errorf("changed.Email() = %q, want %q", changed.Email(), newEmail)
	}
	if original.Email().Value() != "alice@example.com" {
		t.Errorf("receiver mutated: Email() = %q", original.Email())
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

func TestUser_ChangeName(t *testing.T) {
	t.Parallel()

	original := newTestUser(t)
	newName, err := NewUsername("alice-2")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}

	changed := original.ChangeName(newName)

	if !changed.Name().Equals(newName) {
		t.Errorf("changed.Name() = %q, want %q", changed.Name(), newName)
	}
	if original.Name().Value() != "alice" {
		t.Errorf("receiver mutated: Name() = %q", original.Name())
	}
}

func TestUser_Equals(t *testing.T) {
	t.Parallel()

	u := newTestUser(t)
	other := newTestUser(t)

	name, err := NewUsername("alice-2")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}
	changed := u.ChangeName(name)

	if !u.Equals(changed) {
		t.Error("same identity compares unequal after a change")
	}
	if u.Equals(other) {
		t.Error("distinct identities compare equal")
	}
	if u.Equals(nil) {
		t.Error("Equals(nil) = true, want false")
	}
}

func TestReconstruct_PreservesTimestamps(t *testing.T) {
	t.Parallel()

	email, err := NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	name, err := NewUsername("alice")
	if err != nil {
		t.Fatalf("NewUsername() error = %v", err)
	}
	created := time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	updated := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)

	u := Reconstruct(GenerateID(), email, name, created, updated)

	if !u.CreatedAt().Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", u.CreatedAt(), created)
	}
	if !u.UpdatedAt().Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", u.UpdatedAt(), updated)
	}
}
