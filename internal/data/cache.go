package data

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Cache stores raw provider responses so repeated windows for the same
// symbol (1/3/5/10y all slice the same history) hit the network once.
// Implementations must be safe for concurrent use. Cache failures are
// soft: a broken cache degrades to fetching, never to a failed metric.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
}

// MemoryCache is the in-process default when no Redis address is
// configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	val       []byte
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.val, true
}

func (c *MemoryCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{val: val, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// RedisCache shares provider responses across processes, useful when
// several screens run against the same universe back to back.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCache wraps an existing client. The prefix namespaces keys so
// the screener can share a Redis instance with other tools.
func NewRedisCache(client *redis.Client, keyPrefix string) *RedisCache {
	return &RedisCache{client: client, keyPrefix: keyPrefix}
}

// DialRedis connects a client with the pool and timeout settings used
// for provider caching.
func DialRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Redis cache get failed")
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, c.keyPrefix+key, val, ttl).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Redis cache set failed")
	}
}
