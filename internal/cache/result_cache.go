// Package cache stores ordered catalog query results in Redis so replicas
// serving the same catalog can share them.
package cache

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/Lixing-Zhang/kart-storefront/internal/models"
)

const keyPrefix = "storefront:results:"

// Options configures a RedisResultCache
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	// Namespace separates entries of different catalogs
	Namespace string
	// MaxRetries is passed to the redis client; -1 disables retries
	MaxRetries int
}

// RedisResultCache keeps the product IDs of a query result, in order
type RedisResultCache struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

// NewRedisResultCache creates a cache client. No connection is made until first use.
func NewRedisResultCache(opts Options) *RedisResultCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:       opts.Addr,
		Password:   opts.Password,
		DB:         opts.DB,
		MaxRetries: opts.MaxRetries,
	})
	return &RedisResultCache{client: rdb, ttl: opts.TTL, namespace: opts.Namespace}
}

// Namespace derives a cache namespace from the server version and the catalog
// contents, so a changed menu or a new release never reads older entries.
func Namespace(version string, products []models.Product) (string, error) {
	data, err := sonic.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("encoding catalog: %w", err)
	}
	h := fnv.New64a()
	h.Write([]byte(version))
	h.Write([]byte{0})
	h.Write(data)
	return fmt.Sprintf("%s-%016x", version, h.Sum64()), nil
}

// Key returns the redis key for a normalized filter configuration
func Key(namespace string, cfg models.FilterConfig) string {
	v := url.Values{}
	v.Set("q", cfg.SearchQuery)
	v.Set("category", cfg.Category)
	v.Set("diet", cfg.DietaryFilter)
	v.Set("sort", cfg.SortKey)
	return keyPrefix + namespace + ":" + v.Encode()
}

// GetIDs returns the cached result for cfg. found is false on a cache miss.
func (c *RedisResultCache) GetIDs(ctx context.Context, cfg models.FilterConfig) (ids []string, found bool, err error) {
	data, err := c.client.Get(ctx, Key(c.namespace, cfg)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	if err := sonic.Unmarshal(data, &ids); err != nil {
		return nil, false, fmt.Errorf("decoding cached result: %w", err)
	}
	return ids, true, nil
}

// SetIDs stores the ordered product IDs of a query result
func (c *RedisResultCache) SetIDs(ctx context.Context, cfg models.FilterConfig, ids []string) error {
	data, err := sonic.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := c.client.Set(ctx, Key(c.namespace, cfg), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks connectivity
func (c *RedisResultCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool
func (c *RedisResultCache) Close() error {
	return c.client.Close()
}
