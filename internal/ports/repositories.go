package ports

import (
	"context"

	"github.com/ymatsuda/todo-backend/internal/domain/todo"
	"github.com/ymatsuda/todo-backend/internal/domain/user"
)

// TodoRepository is the persistence port for the Todo aggregate.
type TodoRepository interface {
	// Find returns the todo with the given identifier, or (nil, nil) when
	// no such todo exists. Absence is not an error.
	Find(ctx context.Context, id todo.ID) (*todo.Todo, error)

	// Save upserts the todo by identifier: it creates the row when absent
	// and fully overwrites the mutable fields when present.
	Save(ctx context.Context, t *todo.Todo) error

	// Delete removes the todo. Behavior for a missing identifier is the
	// adapter's choice; the bundled postgres adapter reports not-found.
	Delete(ctx context.Context, id todo.ID) error
}

// UserRepository is the persistence port for the User aggregate.
type UserRepository interface {
	// Find returns the user with the given identifier, or (nil, nil) when
	// no such user exists. Absence is not an error.
	Find(ctx context.Context, id user.ID) (*user.User, error)

	// Save upserts the user by identifier.
	Save(ctx context.Context, u *user.User) error

	// Delete removes the user. Behavior for a missing identifier is the
	// adapter's choice; the bundled postgres adapter reports not-found.
	Delete(ctx context.Context, id user.ID) error
}
