package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"camp-portal/internal/domain"
)

const contentCacheKey = "portal:content:camp"

// ContentLoader fetches camp content from a backing store (e.g., Postgres).
type ContentLoader interface {
	LoadContent(ctx context.Context) (domain.CampContent, error)
}

// ContentCache caches the content bundle as a JSON blob in Redis and falls
// back to a loader on cache miss.
type ContentCache struct {
	client *redis.Client
	loader ContentLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewContentCache(client *redis.Client, loader ContentLoader, ttl time.Duration) *ContentCache {
	return &ContentCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *ContentCache) GetContent(ctx context.Context) (domain.CampContent, error) {
	blob, err := c.client.Get(ctx, contentCacheKey).Bytes()
	if err == nil {
		if content, ok := decodeContent(blob); ok {
			return content, nil
		}
	}

	result, err, _ := c.sf.Do(contentCacheKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		blob, err := c.client.Get(ctx, contentCacheKey).Bytes()
		if err == nil {
			if content, ok := decodeContent(blob); ok {
				return content, nil
			}
		}

		content, err := c.loader.LoadContent(ctx)
		if err != nil {
			return domain.CampContent{}, err
		}

		if blob, err := json.Marshal(content); err == nil {
			_ = c.client.Set(ctx, contentCacheKey, blob, c.ttlWithJitter()).Err()
		}
		return content, nil
	})
	if err != nil {
		return domain.CampContent{}, err
	}
	return result.(domain.CampContent), nil
}

// decodeContent tolerates corrupt cache entries by treating them as misses.
func decodeContent(blob []byte) (domain.CampContent, bool) {
	var content domain.CampContent
	if err := json.Unmarshal(blob, &content); err != nil {
		return domain.CampContent{}, false
	}
	return content, true
}

func (c *ContentCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
