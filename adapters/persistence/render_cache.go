package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/careerforge/api/internal/application/service"
	"github.com/careerforge/api/internal/render"
)

const renderCacheTTL = 15 * time.Minute

type redisRenderCache struct {
	client *redis.Client
}

func NewRedisRenderCache(client *redis.Client) service.RenderCache {
	return &redisRenderCache{client: client}
}

func renderCacheKey(ownerID uuid.UUID, variant render.PortfolioVariant) string {
	return fmt.Sprintf("render:portfolio:%s:%s", ownerID, variant)
}

func (c *redisRenderCache) Get(ctx context.Context, ownerID uuid.UUID, variant render.PortfolioVariant) (*render.Document, bool, error) {
	data, err := c.client.Get(ctx, renderCacheKey(ownerID, variant)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("render cache get: %w", err)
	}

	var doc render.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Treat a corrupt entry as a miss; it gets overwritten on the
		// next Set.
		return nil, false, nil
	}
	return &doc, true, nil
}

func (c *redisRenderCache) Set(ctx context.Context, ownerID uuid.UUID, variant render.PortfolioVariant, doc *render.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, renderCacheKey(ownerID, variant), data, renderCacheTTL).Err(); err != nil {
		return fmt.Errorf("render cache set: %w", err)
	}
	return nil
}

func (c *redisRenderCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	keys := []string{
		renderCacheKey(ownerID, render.PortfolioModern),
		renderCacheKey(ownerID, render.PortfolioClassic),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("render cache invalidate: %w", err)
	}
	return nil
}
