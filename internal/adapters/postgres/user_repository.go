package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ymatsuda/todo-backend/internal/domain"
	"github.com/ymatsuda/todo-backend/internal/domain/user"
	"github.com/ymatsuda/todo-backend/internal/ports"
)

// Compile-time interface check.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository stores users in the users table.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a UserRepository backed by the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Find loads a user by ID. Returns (nil, nil) when no row matches.
func (r *UserRepository) Find(ctx context.Context, id user.ID) (*user.User, error) {
	const query = `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = $1`

	var (
		rawID, rawEmail, rawName string
		createdAt, updatedAt     time.Time
	)
	err := r.pool.QueryRow(ctx, query, id.Value()).Scan(
		&rawID, &rawEmail, &rawName, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying user %s: %w", id.Value(), err)
	}

	return reconstructUser(rawID, rawEmail, rawName, createdAt, updatedAt)
}

// Save upserts the user keyed by its ID.
func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		u.ID().Value(),
		u.Email().Value(),
		u.Name().Value(),
		u.CreatedAt(),
		u.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("saving user %s: %w", u.ID().Value(), err)
	}
	return nil
}

// Delete removes the user. A missing row reports domain.NotFoundError.
func (r *UserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.Value())
	if err != nil {
		return fmt.Errorf("deleting user %s: %w", id.Value(), err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Kind: "User", ID: id.Value()}
	}
	return nil
}

// reconstructUser rebuilds the entity from trusted column values.
func reconstructUser(rawID, rawEmail, rawName string, createdAt, updatedAt time.Time) (*user.User, error) {
	id, err := user.ParseID(rawID)
	if err != nil {
		return nil, fmt.Errorf("stored user id %q: %w", rawID, err)
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("stored email: %w", err)
	}
	name, err := user.NewUsername(rawName)
	if err != nil {
		return nil, fmt.Errorf("stored name: %w", err)
	}
	return user.Reconstruct(id, email, name, createdAt, updatedAt), nil
}
