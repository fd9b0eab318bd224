package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// Transactor runs a unit of work on a single pooled connection.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(exec SQLExecutor) error) error
}

type sqlTransactor struct {
	db *sql.DB
}

// NewTransactor creates a Transactor over the shared pool.
func NewTransactor(db *sql.DB) Transactor {
	return &sqlTransactor{db: db}
}

// WithinTx begins a transaction, hands it to fn and commits when fn succeeds.
// Any error or panic rolls back; the connection goes back to the pool on every path.
func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(exec SQLExecutor) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: starting transaction: %w", ErrDatabaseError, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %w", ErrDatabaseError, err)
	}
	return nil
}
