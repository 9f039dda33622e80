// Package cache keeps hot read paths in Redis in front of Postgres.
package cache

import (
	"context"
	"time"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
	"blackeagles/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	siteImagePathsKey = "site_images:paths"
	// DefaultSiteImageTTL bounds staleness when an edit bypasses this process.
	DefaultSiteImageTTL = 10 * time.Minute
)

// CachedSiteImageRepository serves Paths from a Redis hash (image_key -> path)
// and drops the hash whenever a path changes. Redis errors fall through to
// the wrapped repository.
type CachedSiteImageRepository struct {
	repository.SiteImageRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedSiteImageRepository(repo repository.SiteImageRepository, client *redis.Client, ttl time.Duration) repository.SiteImageRepository {
	if ttl <= 0 {
		ttl = DefaultSiteImageTTL
	}
	return &CachedSiteImageRepository{
		SiteImageRepository: repo,
		client:              client,
		ttl:                 ttl,
	}
}

func (r *CachedSiteImageRepository) Paths(ctx context.Context) (map[string]string, error) {
	cached, err := r.client.HGetAll(ctx, siteImagePathsKey).Result()
	if err != nil {
		logger.WithComponent("cache").Warn("read site image paths failed", zap.Error(err))
	} else if len(cached) > 0 {
		return cached, nil
	}

	paths, err := r.SiteImageRepository.Paths(ctx)
	if err != nil {
		return nil, err
	}
	r.warm(ctx, paths)
	return paths, nil
}

func (r *CachedSiteImageRepository) UpdatePath(ctx context.Context, id int, path, description string) (*model.SiteImage, error) {
	img, err := r.SiteImageRepository.UpdatePath(ctx, id, path, description)
	if err != nil {
		return nil, err
	}
	if err := r.client.Del(ctx, siteImagePathsKey).Err(); err != nil {
		logger.WithComponent("cache").Warn("invalidate site image paths failed", zap.Error(err))
	}
	return img, nil
}

func (r *CachedSiteImageRepository) warm(ctx context.Context, paths map[string]string) {
	if len(paths) == 0 {
		return
	}
	values := make(map[string]interface{}, len(paths))
	for k, v := range paths {
		values[k] = v
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, siteImagePathsKey)
	pipe.HSet(ctx, siteImagePathsKey, values)
	pipe.Expire(ctx, siteImagePathsKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.WithComponent("cache").Warn("warm site image paths failed", zap.Error(err))
	}
}
