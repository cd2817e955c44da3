package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	SummaryFinancialKey = "financial"
	DropdownProductsKey = "products"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Summary caching. Order writes invalidate these so readers never see a
// rollup that predates the write.

func (c *Client) SetSummary(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	return c.rdb.Set(ctx, "summary:"+key, jsonData, ttl).Err()
}

func (c *Client) GetSummary(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "summary:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("summary not cached")
		}
		return fmt.Errorf("failed to get summary: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateSummaries() error {
	ctx := context.Background()
	keys, err := c.rdb.Keys(ctx, "summary:*").Result()
	if err != nil {
		return fmt.Errorf("failed to list summary keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Dropdown caching for the product picker.

func (c *Client) SetDropdown(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal dropdown data: %w", err)
	}
	return c.rdb.Set(ctx, "dropdown:"+key, jsonData, ttl).Err()
}

func (c *Client) GetDropdown(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "dropdown:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("dropdown not cached")
		}
		return fmt.Errorf("failed to get dropdown data: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteDropdown(key string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "dropdown:"+key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
