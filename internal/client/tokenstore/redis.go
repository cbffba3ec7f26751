package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/agroassist/internal/logging"
)

// RedisKeyPrefix namespaces the shared token slot.
const RedisKeyPrefix = "agroassist:"

// Redis shares the token between client processes through a Redis server.
type Redis struct {
	rdb    *redis.Client
	key    string
	logger logging.Logger
}

// NewRedis connects lazily; an unreachable server surfaces as an absent token
// on reads and as an error on writes.
func NewRedis(addr string, logger logging.Logger) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		MaxRetries:  -1,
	})
	return &Redis{rdb: rdb, key: RedisKeyPrefix + Key, logger: logger}
}

func (r *Redis) stampKey() string {
	return r.key + "StoredAt"
}

func (r *Redis) Get(ctx context.Context) (string, bool) {
	val, err := r.rdb.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		r.logger.Warn(ctx, "token store read failed", "store", "redis", "error", err)
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, token string) error {
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.key, token, 0)
		p.Set(ctx, r.stampKey(), now().Format(time.RFC3339Nano), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store token in redis: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key, r.stampKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear token in redis: %w", err)
	}
	return nil
}

func (r *Redis) IsPresent(ctx context.Context) bool {
	_, ok := r.Get(ctx)
	return ok
}

func (r *Redis) StoredAt(ctx context.Context) (time.Time, bool) {
	return parseStamp(ctx, r.logger, func() (string, bool, error) {
		val, err := r.rdb.Get(ctx, r.stampKey()).Result()
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return val, err == nil, err
	})
}

// Ping checks connectivity without touching the token.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
