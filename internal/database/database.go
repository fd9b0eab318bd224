package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"store_expiry_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

//go:embed schema.sql
var schemaSQL string

// PoolConfig bounds the shared connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// InitDB opens the process-wide connection pool and verifies it with a ping.
// The caller owns the returned pool and must Close it on shutdown.
func InitDB(ctx context.Context, dsn string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	utils.LogInfo("Successfully connected to the database", map[string]interface{}{
		"max_open_conns": pool.MaxOpenConns,
		"max_idle_conns": pool.MaxIdleConns,
	})
	return db, nil
}

// ApplySchema creates every table that does not exist yet. Safe to run on each start.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	utils.LogInfo("Database tables are ready")
	return nil
}

// Setup applies the schema and seeds the store directory.
func Setup(ctx context.Context, db *sql.DB) error {
	if err := ApplySchema(ctx, db); err != nil {
		return err
	}
	if _, err := SeedStores(ctx, db); err != nil {
		return err
	}
	return nil
}
