package cache

import (
	"context"
	"fmt"
	"log/slog"

	"art-gallery/internal/config"
	"art-gallery/internal/models"
)

//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks

// CacheProvider caches the public artwork listing. Writes go through the
// database; the cache only ever holds a recent copy of the full list and is
// invalidated on any mutation.
type CacheProvider interface {
	GetArtworks(ctx context.Context) ([]models.Artwork, bool)
	SetArtworks(ctx context.Context, artworks []models.Artwork)
	Invalidate(ctx context.Context)
}

func NewCacheProvider(cfg *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case "memory":
		return NewMemCache(cfg.Cache.TTL), nil
	case "redis":
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis cache requires a redis section")
		}
		return NewRedisCache(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
}
