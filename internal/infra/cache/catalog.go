// Package cache keeps catalog reads and processed webhook ids in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"travel-deals/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = queries.ErrCacheMiss

const catalogVersionKey = "catalog:version"

// CatalogCache namespaces every entry under the current catalog version, so
// bumping the version invalidates all listings at once.
type CatalogCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewCatalogCache(client *redis.Client, baseTTL time.Duration) *CatalogCache {
	return &CatalogCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (c *CatalogCache) GetListing(ctx context.Context, category, sort string) ([]queries.DealSummary, error) {
	var out []queries.DealSummary
	if err := c.get(ctx, "list:"+category+":"+sort, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogCache) SetListing(ctx context.Context, category, sort string, deals []queries.DealSummary) error {
	return c.set(ctx, "list:"+category+":"+sort, deals)
}

func (c *CatalogCache) GetDeal(ctx context.Context, slug string) (*queries.DealDetail, error) {
	var out queries.DealDetail
	if err := c.get(ctx, "deal:"+slug, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CatalogCache) SetDeal(ctx context.Context, slug string, detail *queries.DealDetail) error {
	return c.set(ctx, "deal:"+slug, detail)
}

// Invalidate bumps the version; stale entries age out through their TTL.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, catalogVersionKey).Err(); err != nil {
		return fmt.Errorf("redis incr failed: %w", err)
	}
	return nil
}

func (c *CatalogCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, catalogVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get version failed: %w", err)
	}
	return v, nil
}

func (c *CatalogCache) key(ctx context.Context, suffix string) (string, error) {
	v, err := c.version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:v%d:%s", v, suffix), nil
}

func (c *CatalogCache) get(ctx context.Context, suffix string, dst any) error {
	key, err := c.key(ctx, suffix)
	if err != nil {
		return err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal cached catalog failed: %w", err)
	}
	return nil
}

func (c *CatalogCache) set(ctx context.Context, suffix string, v any) error {
	key, err := c.key(ctx, suffix)
	if err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal catalog failed: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl()).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// ttl adds up to 20% jitter so entries written together do not expire together.
func (c *CatalogCache) ttl() time.Duration {
	spread := int64(c.baseTTL / 5)
	if spread <= 0 {
		return c.baseTTL
	}
	return c.baseTTL + time.Duration(rand.Int64N(spread)) // #nosec G404 -- jitter only
}
