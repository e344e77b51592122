package ports

import (
	"context"
	"time"
)

// CreateTodoParams is the input for TodoService.CreateTodo. A nil Body means
// the todo starts with an empty body.
type CreateTodoParams struct {
	UserID string
	Title  string
	Body   *string
}

// UpdateTodoParams is the input for TodoService.UpdateTodo. Nil fields are
// left unchanged. A present-but-empty Body sets the body to its empty state,
// which is distinct from omitting it.
type UpdateTodoParams struct {
	TodoID string
	Title  *string
	Body   *string
	Status *string
}

// TodoResult is the primitives-only representation of a Todo returned by
// the use cases.
type TodoResult struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoService defines the use-case port for todo commands. Implemented by
// the application layer; called by inbound adapters.
type TodoService interface {
	// CreateTodo validates the input, persists a new todo owned by the
	// given user, and returns it.
	// Returns domain.ErrValidation when a field violates its rules.
	CreateTodo(ctx context.Context, p CreateTodoParams) (*TodoResult, error)

	// GetTodo returns the todo with the given identifier.
	// Returns domain.ErrNotFound when it does not exist.
	GetTodo(ctx context.Context, todoID string) (*TodoResult, error)

	// UpdateTodo applies the present fields to an existing todo and
	// persists the result.
	// Returns domain.ErrNotFound when the todo does not exist and
	// domain.ErrValidation when a present field violates its rules.
	UpdateTodo(ctx context.Context, p UpdateTodoParams) (*TodoResult, error)

	// DeleteTodo removes the todo. The delete is issued directly without a
	// prior fetch; a missing identifier surfaces whatever the repository
	// adapter reports.
	DeleteTodo(ctx context.Context, todoID string) error
}

// CreateUserParams is the input for UserService.CreateUser.
type CreateUserParams struct {
	Email string
	Name  string
}

// UpdateUserParams is the input for UserService.UpdateUser. Nil fields are
// left unchanged.
type UpdateUserParams struct {
	UserID string
	Email  *string
	Name   *string
}

// UserResult is the primitives-only representation of a User returned by
// the use cases.
type UserResult struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserService defines the use-case port for user commands.
type UserService interface {
	// CreateUser validates the input, persists a new user, and returns it.
	// Returns domain.ErrValidation when a field violates its rules.
	CreateUser(ctx context.Context, p CreateUserParams) (*UserResult, error)

	// GetUser returns the user with the given identifier.
	// Returns domain.ErrNotFound when it does not exist.
	GetUser(ctx context.Context, userID string) (*UserResult, error)

	// UpdateUser applies the present fields to an existing user and
	// persists the result.
	// Returns domain.ErrNotFound when the user does not exist and
	// domain.ErrValidation when a present field violates its rules.
	UpdateUser(ctx context.Context, p UpdateUserParams) (*UserResult, error)

	// DeleteUser removes the user. Same delete semantics as
	// TodoService.DeleteTodo.
	DeleteUser(ctx context.Context, userID string) error
}
