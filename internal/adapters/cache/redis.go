package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"confcompanion/internal/domain"
)

// NewRedisClient parses url, connects and pings.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// kv is the subset of redis.Cmdable the cache uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ConferenceCache stores conferences as JSON under "conference:<slug>".
type ConferenceCache struct {
	rdb kv
	ttl time.Duration
}

// NewConferenceCache returns a cache over rdb with the given entry TTL.
func NewConferenceCache(rdb kv, ttl time.Duration) *ConferenceCache {
	return &ConferenceCache{rdb: rdb, ttl: ttl}
}

var _ domain.ConferenceCache = (*ConferenceCache)(nil)

func conferenceKey(slug string) string {
	return fmt.Sprintf("conference:%s", slug)
}

// Get returns (nil, nil) on a miss.
func (c *ConferenceCache) Get(ctx context.Context, slug string) (*domain.Conference, error) {
	data, err := c.rdb.Get(ctx, conferenceKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached conference: %w", err)
	}
	var conf domain.Conference
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("decode cached conference: %w", err)
	}
	return &conf, nil
}

func (c *ConferenceCache) Set(ctx context.Context, conf *domain.Conference) error {
	data, err := json.Marshal(conf)
	if err != nil {
		return fmt.Errorf("encode conference: %w", err)
	}
	if err := c.rdb.Set(ctx, conferenceKey(conf.Slug), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache conference: %w", err)
	}
	return nil
}

func (c *ConferenceCache) Delete(ctx context.Context, slug string) error {
	if err := c.rdb.Del(ctx, conferenceKey(slug)).Err(); err != nil {
		return fmt.Errorf("evict conference: %w", err)
	}
	return nil
}

// Noop never caches anything.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.Conference, error) { return nil, nil }
func (Noop) Set(context.Context, *domain.Conference) error           { return nil }
func (Noop) Delete(context.Context, string) error                    { return nil }
