// Package pgexec executes finalized statements against PostgreSQL
// through a pgx connection pool.
package pgexec

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guardql/guardql/guard"
)

// Executor runs statements on a PostgreSQL database.
type Executor struct {
	pool *pgxpool.Pool
}

var _ guard.Executor = (*Executor)(nil)

// Connect opens a connection pool for the given DSN and returns an
// executor for it.
func Connect(ctx context.Context, dsn string) (*Executor, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgexec: connect: %w", err)
	}
	return New(pool), nil
}

// New wraps an existing pool. The caller keeps ownership of the pool
// unless the executor was created with Connect.
func New(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool}
}

// Pool exposes the underlying pool, for schema setup and seeding.
func (e *Executor) Pool() *pgxpool.Pool { return e.pool }

// Close releases the connection pool.
func (e *Executor) Close() { e.pool.Close() }

// Select runs a selection statement and returns rows as maps keyed by
// column name.
func (e *Executor) Select(ctx context.Context, st *guard.Statement) ([]map[string]any, error) {
	if st.Kind != guard.KindSelect {
		return nil, fmt.Errorf("pgexec: Select requires a select statement, got %s", st.Kind)
	}
	query, args, err := st.SQL(guard.PostgresDialect{})
	if err != nil {
		return nil, err
	}

	rows, err := e.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgexec: query %s: %w", st.Table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("pgexec: scan: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, f := range fields {
			row[f.Name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgexec: rows: %w", err)
	}
	return out, nil
}

// Exec runs an update or deletion statement and returns the number of
// affected rows.
func (e *Executor) Exec(ctx context.Context, st *guard.Statement) (int64, error) {
	if st.Kind == guard.KindSelect {
		return 0, fmt.Errorf("pgexec: Exec requires an update or delete statement")
	}
	query, args, err := st.SQL(guard.PostgresDialect{})
	if err != nil {
		return 0, err
	}

	tag, err := e.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("pgexec: exec %s: %w", st.Table, err)
	}
	return tag.RowsAffected(), nil
}
