package sources

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"webhunt/types"

	"github.com/redis/go-redis/v9"
)

// CacheConfig configures the Redis response cache
type CacheConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	TTL      time.Duration
}

// Cache stores adapter responses in Redis so repeated queries within the TTL
// window do not hammer rate-limited source APIs.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheFromEnv creates a Cache using environment variables
// REDIS_ADDR, REDIS_PASS, REDIS_DB (optional), CACHE_TTL_SECONDS (optional).
// Returns nil, nil when REDIS_ADDR is unset: caching is optional.
func NewCacheFromEnv() (*Cache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}
	pass := os.Getenv("REDIS_PASS")

	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			db = v
		}
	}

	ttl := 10 * time.Minute
	if t := os.Getenv("CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return NewCache(CacheConfig{Addr: addr, Password: pass, DB: db, TTL: ttl})
}

// NewCache creates a Cache and verifies connectivity.
func NewCache(cfg CacheConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

func cacheKey(adapter, query string) string {
	hash := sha256.Sum256([]byte(query))
	return "webhunt:cache:" + adapter + ":" + hex.EncodeToString(hash[:])[:16]
}

// Cached wraps an adapter with the Redis response cache. A nil cache returns
// the adapter unchanged, so callers can wrap unconditionally.
func Cached(adapter Adapter, cache *Cache) Adapter {
	if cache == nil {
		return adapter
	}
	return &cachedAdapter{inner: adapter, cache: cache}
}

type cachedAdapter struct {
	inner Adapter
	cache *Cache
}

func (c *cachedAdapter) Name() string { return c.inner.Name() }

// Search consults the cache first. Cache failures are logged and fall through
// to the live source; the cache must never make an adapter less reliable.
func (c *cachedAdapter) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	key := cacheKey(c.inner.Name(), query)

	raw, err := c.cache.client.Get(ctx, key).Bytes()
	if err == nil {
		var items []types.RawItem
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		log.Printf("Warning: discarding corrupt cache entry %s", key)
	} else if err != redis.Nil {
		log.Printf("Warning: cache read failed for %s: %v", key, err)
	}

	items, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := c.cache.client.Set(ctx, key, payload, c.cache.ttl).Err(); err != nil {
			log.Printf("Warning: cache write failed for %s: %v", key, err)
		}
	}
	return items, nil
}
