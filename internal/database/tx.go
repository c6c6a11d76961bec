package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WithTx runs fn inside one transaction. The transaction commits only when fn
// returns nil; every other exit path, including a panic, rolls it back.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LockClause is the row-lock suffix for a SELECT inside a transaction.
// SQLite has no row locks; its transactions already hold the write lock.
func LockClause(driver string) string {
	if driver == DriverPostgres {
		return " FOR UPDATE"
	}
	return ""
}
