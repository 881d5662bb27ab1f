// Package cache is an optional TTL cache in front of the hot public
// reads. A nil *Cache is a valid no-op cache, so callers never branch on
// whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KeyRestaurantNames = "restaurantes:nombres"
	KeyActiveProducts  = "productos:lista"
	KeyIngredients     = "productos:ingredientes"
)

type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(addr string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{Client: client, TTL: ttl}, nil
}

// GetJSON loads a cached value into dest. A miss, a decode failure or a
// nil cache all report false; callers fall through to the store.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key, data, c.TTL)
}

// Invalidate drops keys after a write touches the data behind them.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.Client.Del(ctx, keys...)
}
