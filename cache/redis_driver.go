package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arklib/redix"
)

type RedisDriver struct {
	client *redix.Client
}

func NewRedisDriver(client *redix.Client) *RedisDriver {
	return &RedisDriver{client: client}
}

func (r *RedisDriver) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return r.client.StringSet(ctx, key, data, ttl)
}

func (r *RedisDriver) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.StringGetBytes(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return data, err
}

func (r *RedisDriver) Del(ctx context.Context, key string) error {
	_, err := r.client.KeyDelete(ctx, key)
	return err
}
