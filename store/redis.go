package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/navicore/regexgen/pattern"
)

// RedisStore keeps the pattern list as one JSON blob at PatternsKey.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr, // default "localhost:6379"
		Password: "",   // "" for no password, ok for now
		DB:       0,    // 0 for default database
	})

	return &RedisStore{client: rdb}
}

func (s *RedisStore) Load(ctx context.Context) ([]pattern.Pattern, error) {
	jsonData, err := s.client.Get(ctx, PatternsKey).Result()
	if err != nil {
		if err == redis.Nil {
			// nothing saved yet
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read patterns: %v", ErrUnavailable, err)
	}

	patterns, err := pattern.UnmarshalList([]byte(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return patterns, nil
}

func (s *RedisStore) Save(ctx context.Context, patterns []pattern.Pattern) error {
	jsonData, err := pattern.MarshalList(patterns)
	if err != nil {
		return fmt.Errorf("failed to serialize patterns: %w", err)
	}

	// no TTL: the pattern list lives until the next save overwrites it
	if err := s.client.Set(ctx, PatternsKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("%w: failed to write patterns: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *RedisStore) Shutdown() {
	_ = s.client.Close()
}
