// Package sqlexec executes finalized statements against SQLite through
// database/sql. It is the reference Executor implementation for embedded
// and test deployments.
package sqlexec

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/guardql/guardql/guard"
)

// Executor runs statements on a SQLite database.
type Executor struct {
	db *sql.DB
}

var _ guard.Executor = (*Executor)(nil)

// Open opens the SQLite database at path and returns an executor for it.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Executor, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	return New(db), nil
}

// New wraps an existing database handle. The caller keeps ownership of db
// unless the executor was created with Open.
func New(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// DB exposes the underlying handle, for schema setup and seeding.
func (e *Executor) DB() *sql.DB { return e.db }

// Close closes the underlying database handle.
func (e *Executor) Close() error { return e.db.Close() }

// Select runs a selection statement and returns rows as maps keyed by
// column name.
func (e *Executor) Select(ctx context.Context, st *guard.Statement) ([]map[string]any, error) {
	if st.Kind != guard.KindSelect {
		return nil, fmt.Errorf("sqlexec: Select requires a select statement, got %s", st.Kind)
	}
	query, args, err := st.SQL(guard.SQLiteDialect{})
	if err != nil {
		return nil, err
	}

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlexec: query %s: %w", st.Table, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlexec: columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("sqlexec: scan: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlexec: rows: %w", err)
	}
	return out, nil
}

// Exec runs an update or deletion statement and returns the number of
// affected rows.
func (e *Executor) Exec(ctx context.Context, st *guard.Statement) (int64, error) {
	if st.Kind == guard.KindSelect {
		return 0, fmt.Errorf("sqlexec: Exec requires an update or delete statement")
	}
	query, args, err := st.SQL(guard.SQLiteDialect{})
	if err != nil {
		return 0, err
	}

	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("sqlexec: exec %s: %w", st.Table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlexec: rows affected: %w", err)
	}
	return affected, nil
}
