package otp

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"alumnihub/config"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/errors"
)

// keyPrefix namespaces reset codes inside a shared Redis instance.
const keyPrefix = "otp:"

// redisStore is the shared CodeStore for multi-instance deployments.
// Expiry is delegated to the Redis server, so every instance sees the same
// lifecycle for a code.
type redisStore struct {
	client *redis.Client
}

// NewRedisClient builds the Redis client for the shared code store.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client) service.CodeStore {
	return &redisStore{client: client}
}

// Put stores value under key with the given TTL, replacing any prior entry.
func (s *redisStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store code in redis")
	}

	return nil
}

// Get returns the live value for key, or ErrCodeNotFound once it expired.
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrCodeNotFound
		}

		return "", errors.Wrap(err, "failed to read code from redis")
	}

	return value, nil
}

// Delete removes the entry for key.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete code from redis")
	}

	return nil
}
