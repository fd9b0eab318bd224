package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert violates a primary key or unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrForeignKey is returned when a row references, or is referenced by, a missing row.
	ErrForeignKey = errors.New("foreign key constraint violated")
)

// Primary key constraint names, as generated by Postgres for schema.sql.
const (
	ConstraintStaffPKey       = "staff_pkey"
	ConstraintAccessCodesPKey = "access_codes_pkey"
	ConstraintItemsPKey       = "items_pkey"
)

// SQLExecutor is satisfied by *sql.DB and *sql.Tx, so repository methods
// can run inside or outside a transaction.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// classifyError maps driver errors onto the repository sentinels.
func classifyError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s: %w", ErrDuplicateKey, op, err)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s: %w", ErrForeignKey, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrDatabaseError, op, err)
}

// ConstraintOf returns the constraint name of a wrapped *pq.Error, or "".
func ConstraintOf(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
