package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/metrics"
	"art-gallery/internal/models"

	"github.com/redis/go-redis/v9"
)

const artworksKey = "artworks:list"

// RedisCache shares the artwork listing between instances. A failed redis
// round trip degrades to a miss, never to an error surfaced to the client.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(cfg *config.Config, logger *slog.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Username:     cfg.Redis.Username,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.CacheIndex,
		MinIdleConns: 2,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("artwork cache stored in redis", "address", cfg.Redis.Address, "db", cfg.Redis.CacheIndex)

	return &RedisCache{
		client: client,
		ttl:    cfg.Cache.TTL,
		logger: logger,
	}, nil
}

// Client exposes the underlying connection for metrics collectors.
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

func (c *RedisCache) GetArtworks(ctx context.Context) ([]models.Artwork, bool) {
	payload, err := c.client.Get(ctx, artworksKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("artwork cache read failed", "error", err)
		}
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return nil, false
	}

	var artworks []models.Artwork
	if err := json.Unmarshal(payload, &artworks); err != nil {
		c.logger.Warn("artwork cache payload corrupt", "error", err)
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("redis").Inc()
	return artworks, true
}

func (c *RedisCache) SetArtworks(ctx context.Context, artworks []models.Artwork) {
	payload, err := json.Marshal(artworks)
	if err != nil {
		c.logger.Warn("failed to marshal artwork cache payload", "error", err)
		return
	}

	if err := c.client.Set(ctx, artworksKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("artwork cache write failed", "error", err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, artworksKey).Err(); err != nil {
		c.logger.Warn("artwork cache invalidation failed", "error", err)
	}
}
