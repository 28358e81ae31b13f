package cache

import (
	"context"
	"sync"
	"time"

	"art-gallery/internal/metrics"
	"art-gallery/internal/models"
)

// MemCache is the in-process cache used by single-instance deployments.
type MemCache struct {
	mu        sync.RWMutex
	artworks  []models.Artwork
	expiresAt time.Time
	ttl       time.Duration
}

func NewMemCache(ttl time.Duration) *MemCache {
	return &MemCache{ttl: ttl}
}

func (c *MemCache) GetArtworks(_ context.Context) ([]models.Artwork, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.artworks == nil || time.Now().After(c.expiresAt) {
		metrics.CacheMisses.WithLabelValues("memory").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("memory").Inc()

	copied := make([]models.Artwork, len(c.artworks))
	copy(copied, c.artworks)
	return copied, true
}

func (c *MemCache) SetArtworks(_ context.Context, artworks []models.Artwork) {
	copied := make([]models.Artwork, len(artworks))
	copy(copied, artworks)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.artworks = copied
	c.expiresAt = time.Now().Add(c.ttl)
}

func (c *MemCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.artworks = nil
}
