package redix

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Echo(ctx context.Context, message any) (string, error) {
	return c.rdb.Echo(ctx, message).Result()
}

func (c *Client) DBSize(ctx context.Context) (int64, error) {
	return c.rdb.DBSize(ctx).Result()
}

// FlushDB drops every key of the selected db, prefixed or not.
func (c *Client) FlushDB(ctx context.Context) error {
	return c.rdb.FlushDB(ctx).Err()
}

func (c *Client) FlushAll(ctx context.Context) error {
	return c.rdb.FlushAll(ctx).Err()
}

func (c *Client) LastSave(ctx context.Context) (time.Time, error) {
	at, err := c.rdb.LastSave(ctx).Result()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(at, 0), nil
}

func (c *Client) ConfigGet(ctx context.Context, parameter string) (map[string]string, error) {
	return c.rdb.ConfigGet(ctx, parameter).Result()
}

func (c *Client) ConfigSet(ctx context.Context, parameter, value string) error {
	return c.rdb.ConfigSet(ctx, parameter, value).Err()
}

func (c *Client) ClientID(ctx context.Context) (int64, error) {
	return c.rdb.ClientID(ctx).Result()
}

func (c *Client) ClientGetName(ctx context.Context) (string, error) {
	return c.rdb.ClientGetName(ctx).Result()
}

func (c *Client) ClientList(ctx context.Context) (string, error) {
	return c.rdb.ClientList(ctx).Result()
}

func (c *Client) Time(ctx context.Context) (time.Time, error) {
	return c.rdb.Time(ctx).Result()
}

func (c *Client) Info(ctx context.Context, sections ...string) (string, error) {
	return c.rdb.Info(ctx, sections...).Result()
}

// Pipelined and TxPipelined hand out the raw pipeliner: keys queued on it
// are not prefixed.
func (c *Client) Pipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	return c.rdb.Pipelined(ctx, fn)
}

func (c *Client) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	return c.rdb.TxPipelined(ctx, fn)
}

// Watch runs fn in a WATCH/MULTI transaction over keys.
func (c *Client) Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	return c.rdb.Watch(ctx, fn, c.keys(keys)...)
}

// Key returns key with the client prefix, for use with Raw, pipelines and
// transactions.
func (c *Client) Key(key string) string {
	return c.key(key)
}
