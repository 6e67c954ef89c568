package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle the user, flashcard, and progress
// stores run their queries against. Both *sql.DB and *sql.Tx satisfy it,
// so a store built over a connection pool and the same store rebound to
// a transaction via WithTx share one implementation.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
