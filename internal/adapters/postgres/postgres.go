// Package postgres implements the repository ports on PostgreSQL using pgx
// connection pools. Rows are mapped back into domain entities through their
// trusted reconstruction constructors, so values loaded from the database
// satisfy the same invariants as freshly created ones.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ymatsuda/todo-backend/internal/platform/config"
	"github.com/ymatsuda/todo-backend/internal/ports"
)

// NewPool creates a pgx connection pool from the database configuration and
// verifies connectivity with a ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database dsn: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// Compile-time interface check.
var _ ports.HealthChecker = (*PoolChecker)(nil)

// PoolChecker reports database health for the readiness endpoint.
type PoolChecker struct {
	pool *pgxpool.Pool
}

// NewPoolChecker creates a health checker backed by the given pool.
func NewPoolChecker(pool *pgxpool.Pool) *PoolChecker {
	return &PoolChecker{pool: pool}
}

// Name returns the component identifier used in readiness responses.
func (c *PoolChecker) Name() string { return "postgres" }

// HealthCheck pings the database.
func (c *PoolChecker) HealthCheck(ctx context.Context) error {
	return c.pool.Ping(ctx)
}
