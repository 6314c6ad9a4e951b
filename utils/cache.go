package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores JSON encoded values in redis.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	return &RedisCache{Client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.Client.Ping(ctx).Err()
}

// Get unmarshals the cached value into dest. A missing key is (false, nil).
func (rc *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := rc.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

func (rc *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rc.Client.Set(ctx, key, b, ttl).Err()
}

func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	return rc.Client.Del(ctx, key).Err()
}
