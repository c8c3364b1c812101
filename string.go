package redix

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

func (c *Client) StringSet(ctx context.Context, key string, value any, expiry time.Duration) error {
	return c.rdb.Set(ctx, c.key(key), value, expiry).Err()
}

func (c *Client) StringSetNX(ctx context.Context, key string, value any, expiry time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, c.key(key), value, expiry).Result()
}

func (c *Client) StringSetXX(ctx context.Context, key string, value any, expiry time.Duration) (bool, error) {
	return c.rdb.SetXX(ctx, c.key(key), value, expiry).Result()
}

// StringSetArgs returns "OK", or the old value when args.Get is set.
func (c *Client) StringSetArgs(ctx context.Context, key string, value any, args redis.SetArgs) (string, error) {
	return c.rdb.SetArgs(ctx, c.key(key), value, args).Result()
}

func (c *Client) StringGet(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, c.key(key)).Result()
}

func (c *Client) StringGetBytes(ctx context.Context, key string) ([]byte, error) {
	return c.rdb.Get(ctx, c.key(key)).Bytes()
}

func (c *Client) StringGetSet(ctx context.Context, key string, value any) (string, error) {
	return c.rdb.GetSet(ctx, c.key(key), value).Result()
}

func (c *Client) StringGetDel(ctx context.Context, key string) (string, error) {
	return c.rdb.GetDel(ctx, c.key(key)).Result()
}

func (c *Client) StringGetEx(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return c.rdb.GetEx(ctx, c.key(key), expiry).Result()
}

func (c *Client) StringGetRange(ctx context.Context, key string, start, end int64) (string, error) {
	return c.rdb.GetRange(ctx, c.key(key), start, end).Result()
}

func (c *Client) StringSetRange(ctx context.Context, key string, offset int64, value string) (int64, error) {
	return c.rdb.SetRange(ctx, c.key(key), offset, value).Result()
}

// StringMGet returns one entry per key, nil for missing keys.
func (c *Client) StringMGet(ctx context.Context, keys ...string) ([]any, error) {
	return c.rdb.MGet(ctx, c.keys(keys)...).Result()
}

func (c *Client) StringMSet(ctx context.Context, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	return c.rdb.MSet(ctx, c.prefixMap(values)).Err()
}

func (c *Client) StringMSetNX(ctx context.Context, values map[string]any) (bool, error) {
	if len(values) == 0 {
		return false, nil
	}
	return c.rdb.MSetNX(ctx, c.prefixMap(values)).Result()
}

func (c *Client) StringIncr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, c.key(key)).Result()
}

func (c *Client) StringIncrBy(ctx context.Context, key string, value int64) (int64, error) {
	return c.rdb.IncrBy(ctx, c.key(key), value).Result()
}

func (c *Client) StringIncrByFloat(ctx context.Context, key string, value float64) (float64, error) {
	return c.rdb.IncrByFloat(ctx, c.key(key), value).Result()
}

func (c *Client) StringDecr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Decr(ctx, c.key(key)).Result()
}

func (c *Client) StringDecrBy(ctx context.Context, key string, value int64) (int64, error) {
	return c.rdb.DecrBy(ctx, c.key(key), value).Result()
}

func (c *Client) StringAppend(ctx context.Context, key, value string) (int64, error) {
	return c.rdb.Append(ctx, c.key(key), value).Result()
}

func (c *Client) StringLen(ctx context.Context, key string) (int64, error) {
	return c.rdb.StrLen(ctx, c.key(key)).Result()
}

func (c *Client) StringGetBit(ctx context.Context, key string, offset int64) (int64, error) {
	return c.rdb.GetBit(ctx, c.key(key), offset).Result()
}

func (c *Client) StringSetBit(ctx context.Context, key string, offset int64, value int) (int64, error) {
	return c.rdb.SetBit(ctx, c.key(key), offset, value).Result()
}

// StringBitCount counts the whole value when bitCount is nil.
func (c *Client) StringBitCount(ctx context.Context, key string, bitCount *redis.BitCount) (int64, error) {
	return c.rdb.BitCount(ctx, c.key(key), bitCount).Result()
}

// StringBitOp runs BITOP with op one of and, or, xor, not.
func (c *Client) StringBitOp(ctx context.Context, op, destKey string, keys ...string) (int64, error) {
	dest, keys := c.key(destKey), c.keys(keys)
	switch strings.ToLower(op) {
	case "and":
		return c.rdb.BitOpAnd(ctx, dest, keys...).Result()
	case "or":
		return c.rdb.BitOpOr(ctx, dest, keys...).Result()
	case "xor":
		return c.rdb.BitOpXor(ctx, dest, keys...).Result()
	case "not":
		if len(keys) != 1 {
			return 0, fmt.Errorf("redix: bitop not takes one key, got %d", len(keys))
		}
		return c.rdb.BitOpNot(ctx, dest, keys[0]).Result()
	default:
		return 0, fmt.Errorf("redix: unknown bitop %q", op)
	}
}

func (c *Client) StringBitPos(ctx context.Context, key string, bit int64, pos ...int64) (int64, error) {
	return c.rdb.BitPos(ctx, c.key(key), bit, pos...).Result()
}

func (c *Client) prefixMap(values map[string]any) map[string]any {
	if c.prefix == "" {
		return values
	}
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[c.prefix+k] = v
	}
	return out
}
