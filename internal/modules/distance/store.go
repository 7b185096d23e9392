// README: Redis-backed cache of resolved distance results.
package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

var errCacheMiss = errors.New("distance: cache miss")

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func cacheKey(origin, destination string, class Class) string {
	return fmt.Sprintf("distance:%s|%s|%s",
		strings.ToLower(origin), strings.ToLower(destination), class)
}

func (s *Store) Get(ctx context.Context, origin, destination string, class Class) (Result, error) {
	if s == nil || s.redis == nil {
		return Result{}, errCacheMiss
	}
	raw, err := s.redis.Get(ctx, cacheKey(origin, destination, class)).Result()
	if err == redis.Nil {
		return Result{}, errCacheMiss
	}
	if err != nil {
		return Result{}, err
	}
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (s *Store) Put(ctx context.Context, origin, destination string, class Class, res Result) error {
	if s == nil || s.redis == nil {
		return nil
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, cacheKey(origin, destination, class), raw, cacheTTL).Err()
}
