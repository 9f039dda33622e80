package database

import (
	"context"
	"fmt"

	"blackeagles/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "blackeagles"

// PoolConfig turns the database section into a pgxpool config. Sessions run
// in UTC; event dates are DATE columns and carry no zone.
func PoolConfig(cfg *config.DatabaseConfig) (*pgxpool.Config, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=UTC application_name=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, applicationName)

	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 && int32(cfg.MinConns) <= pc.MaxConns {
		pc.MinConns = int32(cfg.MinConns)
	}
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	return pc, nil
}

// InitDatabase opens the pool and fails fast when Postgres does not answer.
func InitDatabase(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	pc, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s@%s:%s: %w", cfg.DBName, cfg.Host, cfg.Port, err)
	}
	return pool, nil
}
