// Package testutil starts throwaway PostgreSQL instances for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance
type PostgresContainer struct {
	*postgres.PostgresContainer
	DSN string
}

// PostgresContainerConfig configures the test PostgreSQL container
type PostgresContainerConfig struct {
	Database string
	Username string
	Password string
	Image    string
}

func DefaultPostgresConfig() PostgresContainerConfig {
	return PostgresContainerConfig{
		Database: "store_expiry_test",
		Username: "test",
		Password: "test",
		Image:    "postgres:16-alpine",
	}
}

// NewPostgresContainer starts a PostgreSQL container and waits until it accepts connections.
func NewPostgresContainer(ctx context.Context, cfg PostgresContainerConfig) (*PostgresContainer, error) {
	container, err := postgres.Run(ctx, cfg.Image,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return &PostgresContainer{PostgresContainer: container, DSN: dsn}, nil
}

var (
	sharedOnce sync.Once
	shared     *PostgresContainer
	sharedErr  error
	dbSeq      atomic.Int64
)

// OpenDB returns a connection to a fresh, empty database. All databases of a
// test binary live in one shared container. The test is skipped under -short
// or when no container runtime is reachable.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	sharedOnce.Do(func() {
		shared, sharedErr = NewPostgresContainer(ctx, DefaultPostgresConfig())
	})
	require.NoError(t, sharedErr)

	admin, err := sql.Open("postgres", shared.DSN)
	require.NoError(t, err)
	defer admin.Close()

	name := fmt.Sprintf("test_%d", dbSeq.Add(1))
	_, err = admin.ExecContext(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err)

	u, err := url.Parse(shared.DSN)
	require.NoError(t, err)
	u.Path = "/" + name

	db, err := sql.Open("postgres", u.String())
	require.NoError(t, err)
	require.NoError(t, db.PingContext(ctx))
	t.Cleanup(func() { db.Close() })
	return db
}

// TerminateShared stops the shared container, if one was started. Call it from TestMain.
func TerminateShared() {
	if shared != nil {
		_ = testcontainers.TerminateContainer(shared.PostgresContainer)
	}
}
