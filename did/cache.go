package did

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const documentKeyPrefix = "didjws:doc"

// ErrCacheUnavailable wraps redis transport failures on cache writes.
var ErrCacheUnavailable = errors.New("document cache unavailable")

// RedisCache is a DocumentCache backed by a shared redis instance, so a fleet
// of verifiers can reuse each other's resolutions.
type RedisCache struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache builds a cache writing entries with the given TTL. A zero TTL
// keeps entries until evicted by redis itself.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		redis:  client,
		prefix: documentKeyPrefix,
		ttl:    ttl,
	}
}

func (c *RedisCache) key(uri string) string {
	return c.prefix + ":" + uri
}

// Get fetches a cached document. Corrupt entries count as misses so the next
// Put overwrites them.
func (c *RedisCache) Get(ctx context.Context, uri string) (Document, error) {
	data, err := c.redis.Get(ctx, c.key(uri)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Document{}, ErrCacheMiss
		}
		return Document{}, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, ErrCacheMiss
	}
	return doc, nil
}

// Put stores a resolved document under the cache TTL.
func (c *RedisCache) Put(ctx context.Context, uri string, doc Document) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := c.redis.Set(ctx, c.key(uri), encoded, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}
