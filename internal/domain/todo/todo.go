// Package todo holds the Todo aggregate and its value objects. All types are
// immutable: constructors validate, change methods return new instances, and
// no setters exist.
package todo

import (
	"time"

	"github.com/ymatsuda/todo-backend/internal/domain/user"
)

// Todo is the todo aggregate. The owning user is referenced by identifier
// only; it is a by-value foreign key, not an owned relationship. Fields are
// unexported so instances can only be produced by New and Reconstruct and
// never mutated afterwards.
type Todo struct {
	id        ID
	userID    user.ID
	title     Title
	body      Body
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// New creates a Todo with a fresh identifier and StatusNotStarted. Both
// timestamps are set to the same instant. Pass EmptyBody() when the caller
// supplied no body.
func New(userID user.ID, title Title, body Body) *Todo {
	now := time.Now().UTC()
	return &Todo{
		id:        GenerateID(),
		userID:    userID,
		title:     title,
		body:      body,
		status:    StatusNotStarted,
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstruct rehydrates a Todo from trusted storage. Timestamps are taken
// as-is; the round trip must not alter them.
func Reconstruct(id ID, userID user.ID, title Title, body Body, status Status, createdAt, updatedAt time.Time) *Todo {
	return &Todo{
		id:        id,
		userID:    userID,
		title:     title,
		body:      body,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the todo identifier.
func (t *Todo) ID() ID { return t.id }

// UserID returns the owning user's identifier.
func (t *Todo) UserID() user.ID { return t.userID }

// Title returns the title.
func (t *Todo) Title() Title { return t.title }

// Body returns the body.
func (t *Todo) Body() Body { return t.body }

// Status returns the status.
func (t *Todo) Status() Status { return t.status }

// CreatedAt returns the creation instant.
func (t *Todo) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last modification instant.
func (t *Todo) UpdatedAt() time.Time { return t.updatedAt }

// ChangeTitle returns a copy of the todo with the title replaced and
// updatedAt refreshed. The receiver is left unchanged.
func (t *Todo) ChangeTitle(title Title) *Todo {
	c := t.clone()
	c.title = title
	return c
}

// ChangeBody returns a copy of the todo with the body replaced and
// updatedAt refreshed. The receiver is left unchanged.
func (t *Todo) ChangeBody(body Body) *Todo {
	c := t.clone()
	c.body = body
	return c
}

// ChangeStatus returns a copy of the todo with the status replaced and
// updatedAt refreshed. The receiver is left unchanged.
func (t *Todo) ChangeStatus(status Status) *Todo {
	c := t.clone()
	c.status = status
	return c
}

// Equals compares todos by identity. Two todos with the same identifier are
// equal regardless of their other fields.
func (t *Todo) Equals(other *Todo) bool {
	return other != nil && t.id.Equals(other.id)
}

// clone copies the todo with updatedAt advanced. now is clamped so
// updatedAt never moves backwards even if the wall clock does.
func (t *Todo) clone() *Todo {
	now := time.Now().UTC()
	if now.Before(t.updatedAt) {
		now = t.updatedAt
	}
	c := *t
	c.updatedAt = now
	return &c
}
