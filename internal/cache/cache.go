package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client caches rendered availability and summary payloads in Redis.
// A nil *Client is a valid no-op cache, so callers never need to branch on
// whether caching is configured.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis using a redis:// URL and verifies the connection.
func New(redisURL, password string, ttl time.Duration) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// NewFromClient wraps an existing Redis client. Used by tests.
func NewFromClient(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func availabilityKey(roomID, date string) string {
	return fmt.Sprintf("availability:%s:%s", roomID, date)
}

const summaryKey = "summary"

// GetAvailability returns a cached availability payload for a room and date.
func (c *Client) GetAvailability(ctx context.Context, roomID, date string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, availabilityKey(roomID, date)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// SetAvailability stores an availability payload with the configured TTL.
// Cache write failures are swallowed; the store remains the source of truth.
func (c *Client) SetAvailability(ctx context.Context, roomID, date string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, availabilityKey(roomID, date), payload, c.ttl)
}

// InvalidateRoom drops every cached availability entry for a room. Called on
// any reservation mutation touching the room.
func (c *Client) InvalidateRoom(ctx context.Context, roomID string) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, availabilityKey(roomID, "*"), 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}

// InvalidateSummary drops the cached catalog summary.
func (c *Client) InvalidateSummary(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, summaryKey)
}

// GetSummary returns the cached catalog summary payload.
func (c *Client) GetSummary(ctx context.Context) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// SetSummary stores the catalog summary payload with the configured TTL.
func (c *Client) SetSummary(ctx context.Context, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, summaryKey, payload, c.ttl)
}
