// Package rediscache implements cache.VerdictCache on Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"emailrep/pkg/cache"
	"emailrep/pkg/domain"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces verdict keys.
const KeyPrefix = "emailrep:verdict:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache stores verdicts as JSON strings with a TTL.
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ cache.VerdictCache = (*Cache)(nil)

// New connects to Redis and checks the connection.
func New(ctx context.Context, opts Options) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewWithClient(client, opts.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key returns the Redis key of address.
func Key(address string) string {
	return KeyPrefix + address
}

func (c *Cache) Get(ctx context.Context, address string) (*domain.Verdict, error) {
	b, err := c.client.Get(ctx, Key(address)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get verdict from redis: %w", err)
	}

	var v domain.Verdict
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("could not decode cached verdict: %w", err)
	}

	return &v, nil
}

func (c *Cache) Set(ctx context.Context, address string, v *domain.Verdict) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode verdict: %w", err)
	}
	if err := c.client.Set(ctx, Key(address), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not store verdict in redis: %w", err)
	}

	return nil
}

// Ping checks the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
