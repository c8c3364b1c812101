package redix

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func (c *Client) ListLeftPush(ctx context.Context, key string, values ...any) (int64, error) {
	return c.rdb.LPush(ctx, c.key(key), values...).Result()
}

func (c *Client) ListRightPush(ctx context.Context, key string, values ...any) (int64, error) {
	return c.rdb.RPush(ctx, c.key(key), values...).Result()
}

func (c *Client) ListLeftPushX(ctx context.Context, key string, values ...any) (int64, error) {
	return c.rdb.LPushX(ctx, c.key(key), values...).Result()
}

func (c *Client) ListRightPushX(ctx context.Context, key string, values ...any) (int64, error) {
	return c.rdb.RPushX(ctx, c.key(key), values...).Result()
}

func (c *Client) ListLeftPop(ctx context.Context, key string) (string, error) {
	return c.rdb.LPop(ctx, c.key(key)).Result()
}

func (c *Client) ListRightPop(ctx context.Context, key string) (string, error) {
	return c.rdb.RPop(ctx, c.key(key)).Result()
}

func (c *Client) ListLeftPopCount(ctx context.Context, key string, count int) ([]string, error) {
	return c.rdb.LPopCount(ctx, c.key(key), count).Result()
}

func (c *Client) ListRightPopCount(ctx context.Context, key string, count int) ([]string, error) {
	return c.rdb.RPopCount(ctx, c.key(key), count).Result()
}

func (c *Client) ListRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return c.rdb.LRange(ctx, c.key(key), start, stop).Result()
}

func (c *Client) ListLen(ctx context.Context, key string) (int64, error) {
	return c.rdb.LLen(ctx, c.key(key)).Result()
}

func (c *Client) ListIndex(ctx context.Context, key string, index int64) (string, error) {
	return c.rdb.LIndex(ctx, c.key(key), index).Result()
}

func (c *Client) ListSet(ctx context.Context, key string, index int64, value any) error {
	return c.rdb.LSet(ctx, c.key(key), index, value).Err()
}

func (c *Client) ListInsertBefore(ctx context.Context, key string, pivot, value any) (int64, error) {
	return c.rdb.LInsertBefore(ctx, c.key(key), pivot, value).Result()
}

func (c *Client) ListInsertAfter(ctx context.Context, key string, pivot, value any) (int64, error) {
	return c.rdb.LInsertAfter(ctx, c.key(key), pivot, value).Result()
}

func (c *Client) ListRemove(ctx context.Context, key string, count int64, value any) (int64, error) {
	return c.rdb.LRem(ctx, c.key(key), count, value).Result()
}

func (c *Client) ListTrim(ctx context.Context, key string, start, stop int64) error {
	return c.rdb.LTrim(ctx, c.key(key), start, stop).Err()
}

func (c *Client) ListRightPopLeftPush(ctx context.Context, src, dst string) (string, error) {
	return c.rdb.RPopLPush(ctx, c.key(src), c.key(dst)).Result()
}

// ListBlockRightPopLeftPush is BRPOPLPUSH; redis.Nil on timeout.
func (c *Client) ListBlockRightPopLeftPush(ctx context.Context, src, dst string, timeout time.Duration) (string, error) {
	return c.rdb.BRPopLPush(ctx, c.key(src), c.key(dst), timeout).Result()
}

// ListMove runs LMOVE; srcPos and dstPos are "LEFT" or "RIGHT".
func (c *Client) ListMove(ctx context.Context, src, dst, srcPos, dstPos string) (string, error) {
	return c.rdb.LMove(ctx, c.key(src), c.key(dst), srcPos, dstPos).Result()
}

// ListBlockLeftPop returns [key, value]; redis.Nil on timeout.
func (c *Client) ListBlockLeftPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	res, err := c.rdb.BLPop(ctx, timeout, c.keys(keys)...).Result()
	return c.trimPopKey(res), err
}

func (c *Client) ListBlockRightPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	res, err := c.rdb.BRPop(ctx, timeout, c.keys(keys)...).Result()
	return c.trimPopKey(res), err
}

func (c *Client) ListBlockMove(ctx context.Context, src, dst, srcPos, dstPos string, timeout time.Duration) (string, error) {
	return c.rdb.BLMove(ctx, c.key(src), c.key(dst), srcPos, dstPos, timeout).Result()
}

func (c *Client) ListPosition(ctx context.Context, key, value string, args redis.LPosArgs) (int64, error) {
	return c.rdb.LPos(ctx, c.key(key), value, args).Result()
}

func (c *Client) trimPopKey(res []string) []string {
	if len(res) > 0 {
		res[0] = c.trim(res[0])
	}
	return res
}
