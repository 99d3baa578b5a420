// README: Redis-backed cache of raw route responses keyed by normalized search params.
package travel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("route cache miss")

const routeKeyPrefix = "routes:"

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redisClient, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, params SearchParams) (RouteResponse, error) {
	key, err := RouteKey(params)
	if err != nil {
		return RouteResponse{}, err
	}
	data, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return RouteResponse{}, ErrCacheMiss
		}
		return RouteResponse{}, fmt.Errorf("redis get routes: %w", err)
	}

	var resp RouteResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return RouteResponse{}, fmt.Errorf("unmarshal cached routes: %w", err)
	}
	return resp, nil
}

// Put stores resp for params. A non-positive TTL disables caching.
func (s *Store) Put(ctx context.Context, params SearchParams, resp RouteResponse) error {
	if s.ttl <= 0 {
		return nil
	}
	key, err := RouteKey(params)
	if err != nil {
		return err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal routes for cache: %w", err)
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set routes: %w", err)
	}
	return nil
}

// RouteKey hashes the normalized params so equivalent searches share an entry.
func RouteKey(params SearchParams) (string, error) {
	canonical, err := json.Marshal(params.Normalize())
	if err != nil {
		return "", fmt.Errorf("marshal route key: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return routeKeyPrefix + hex.EncodeToString(sum[:]), nil
}
