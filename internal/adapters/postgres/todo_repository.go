package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ymatsuda/todo-backend/internal/domain"
	"github.com/ymatsuda/todo-backend/internal/domain/todo"
	"github.com/ymatsuda/todo-backend/internal/domain/user"
	"github.com/ymatsuda/todo-backend/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository stores todos in the todos table.
type TodoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository creates a TodoRepository backed by the given pool.
func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

// Find loads a todo by ID. Returns (nil, nil) when no row matches.
func (r *TodoRepository) Find(ctx context.Context, id todo.ID) (*todo.Todo, error) {
	const query = `
		SELECT id, user_id, title, body, status, created_at, updated_at
		FROM todos
		WHERE id = $1`

	var (
		rawID, rawUserID, rawTitle, rawBody, rawStatus string
		createdAt, updatedAt                           time.Time
	)
	err := r.pool.QueryRow(ctx, query, id.Value()).Scan(
		&rawID, &rawUserID, &rawTitle, &rawBody, &rawStatus, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying todo %s: %w", id.Value(), err)
	}

	return reconstructTodo(rawID, rawUserID, rawTitle, rawBody, rawStatus, createdAt, updatedAt)
}

// Save upserts the todo keyed by its ID.
func (r *TodoRepository) Save(ctx context.Context, item *todo.Todo) error {
	const query = `
		INSERT INTO todos (id, user_id, title, body, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		item.ID().Value(),
		item.UserID().Value(),
		item.Title().Value(),
		item.Body().Value(),
		item.Status().String(),
		item.CreatedAt(),
		item.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("saving todo %s: %w", item.ID().Value(), err)
	}
	return nil
}

// Delete removes the todo. A missing row reports domain.NotFoundError.
func (r *TodoRepository) Delete(ctx context.Context, id todo.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id.Value())
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id.Value(), err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Kind: "Todo", ID: id.Value()}
	}
	return nil
}

// reconstructTodo rebuilds the entity from trusted column values.
func reconstructTodo(rawID, rawUserID, rawTitle, rawBody, rawStatus string, createdAt, updatedAt time.Time) (*todo.Todo, error) {
	id, err := todo.ParseID(rawID)
	if err != nil {
		return nil, fmt.Errorf("stored todo id %q: %w", rawID, err)
	}
	userID, err := user.ParseID(rawUserID)
	if err != nil {
		return nil, fmt.Errorf("stored user id %q: %w", rawUserID, err)
	}
	title, err := todo.NewTitle(rawTitle)
	if err != nil {
		return nil, fmt.Errorf("stored title: %w", err)
	}
	body := todo.EmptyBody()
	if rawBody != "" {
		if body, err = todo.NewBody(rawBody); err != nil {
			return nil, fmt.Errorf("stored body: %w", err)
		}
	}
	status, err := todo.ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("stored status: %w", err)
	}
	return todo.Reconstruct(id, userID, title, body, status, createdAt, updatedAt), nil
}
