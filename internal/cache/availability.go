package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix  = "occupied"
	defaultTTL = 30 * time.Second
	callBudget = 2 * time.Second
)

// RedisAvailability caches occupied-slot reads per (date, staff). Entries
// are short-lived and deleted whenever a write touches their date, so the
// ledger stays the source of truth.
type RedisAvailability struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailability(addr string) (*RedisAvailability, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisAvailability{client: client, ttl: defaultTTL}, nil
}

func (c *RedisAvailability) Close() error {
	return c.client.Close()
}

func key(date string, staffID *uint) string {
	if staffID != nil {
		return fmt.Sprintf("%s:%s:staff:%d", keyPrefix, date, *staffID)
	}
	return fmt.Sprintf("%s:%s:all", keyPrefix, date)
}

func (c *RedisAvailability) GetOccupied(ctx context.Context, date string, staffID *uint) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, callBudget)
	defer cancel()

	raw, err := c.client.Get(ctx, key(date, staffID)).Result()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}
	return times, true
}

func (c *RedisAvailability) SetOccupied(ctx context.Context, date string, staffID *uint, times []string) {
	ctx, cancel := context.WithTimeout(ctx, callBudget)
	defer cancel()

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(date, staffID), raw, c.ttl)
}

// InvalidateDate drops every cached entry for the date, staff-filtered ones
// included.
func (c *RedisAvailability) InvalidateDate(ctx context.Context, date string) {
	ctx, cancel := context.WithTimeout(ctx, callBudget)
	defer cancel()

	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, date)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
