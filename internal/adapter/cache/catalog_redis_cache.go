package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"espaco_vista/internal/domain/pricing"
	"espaco_vista/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "espaco_vista:catalog:snapshot"

// CatalogRedisCache keeps the pricing catalog as one JSON document in Redis.
// A nil client turns every call into a miss.
type CatalogRedisCache struct {
	client *redis.Client
	ttl    time.Duration
	key    string
}

var _ interfaces.ICatalogCache = (*CatalogRedisCache)(nil)

func NewCatalogRedisCache(client *redis.Client, ttl time.Duration) *CatalogRedisCache {
	return &CatalogRedisCache{client: client, ttl: ttl, key: catalogKey}
}

func (c *CatalogRedisCache) Get(ctx context.Context) (pricing.Catalog, bool, error) {
	if c == nil || c.client == nil {
		return pricing.Catalog{}, false, nil
	}
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.Catalog{}, false, nil
		}
		return pricing.Catalog{}, false, err
	}

	var out pricing.Catalog
	if err := json.Unmarshal(data, &out); err != nil {
		return pricing.Catalog{}, false, err
	}
	return out, true, nil
}

func (c *CatalogRedisCache) Set(ctx context.Context, catalog pricing.Catalog) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *CatalogRedisCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key).Err()
}
