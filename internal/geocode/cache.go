// README: Redis read-through cache for successful geocode lookups.
package geocode

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cached decorates a geocoder with a redis read-through cache. Cache failures
// degrade to the inner geocoder; only successful resolutions are stored.
type Cached struct {
	inner Geocoder
	redis *redis.Client
	ttl   time.Duration
}

func WithCache(inner Geocoder, client *redis.Client, ttl time.Duration) *Cached {
	return &Cached{inner: inner, redis: client, ttl: ttl}
}

func cacheKey(query string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

func (c *Cached) Geocode(ctx context.Context, query string) (Result, error) {
	key := cacheKey(query)

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var res Result
		if err := json.Unmarshal(data, &res); err == nil {
			return res, nil
		}
	} else if err != redis.Nil {
		log.Printf("geocode cache read failed: %v", err)
	}

	res, err := c.inner.Geocode(ctx, query)
	if err != nil {
		return Result{}, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}
	return res, nil
}
