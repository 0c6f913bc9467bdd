package persist

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStoreはRedisの文字列キーにJSONを保存する（STORAGE_DRIVER=redis）。
type RedisStore struct {
	rdb *redis.Client
}

// DI
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, 0).Err()
}
