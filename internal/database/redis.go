package database

import (
	"context"
	"fmt"
	"net"

	"blackeagles/config"

	"github.com/redis/go-redis/v9"
)

// RedisOptions maps the redis section onto client options. Zero sizes and
// timeouts keep the go-redis defaults.
func RedisOptions(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
		ClientName:  applicationName,
	}
}

// InitRedis returns a connected client. Callers treat an error as "no Redis"
// and fall back to in-process sessions and queues.
func InitRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(RedisOptions(cfg))
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", rdb.Options().Addr, err)
	}
	return rdb, nil
}
