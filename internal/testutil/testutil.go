// Package testutil connects integration tests to the Postgres and Redis
// instances described by config.LoadTestConfig.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"blackeagles/config"
	"blackeagles/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const connectTimeout = 3 * time.Second

// SetupDatabase connects to the test database and applies the schema.
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	if err := database.Migrate(context.Background(), pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}
	return pool, pool.Close, nil
}

// SetupRedisOnly is for tests that only need Redis (queue, session).
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	return rdb, func() { rdb.Close() }, nil
}

// Truncate empties every table and resets identities. Seeded rows are gone
// afterwards; call database.Migrate again to restore them.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"TRUNCATE "+strings.Join(database.Tables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}
