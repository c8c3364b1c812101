package redix

import (
	"context"
	"time"

	"github.com/spf13/cast"

	"github.com/arklib/redix/util"
)

// HashSet reports whether field was created.
func (c *Client) HashSet(ctx context.Context, key, field string, value any) (bool, error) {
	n, err := c.rdb.HSet(ctx, c.key(key), field, value).Result()
	return n == 1, err
}

func (c *Client) HashSetNX(ctx context.Context, key, field string, value any) (bool, error) {
	return c.rdb.HSetNX(ctx, c.key(key), field, value).Result()
}

// HashSetMap sets every field of values in one HSET and returns the number of
// created fields. An empty map sends nothing.
func (c *Client) HashSetMap(ctx context.Context, key string, values map[string]any) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	// sorted so the command is the same for equal maps
	args := make([]any, 0, 2*len(values))
	util.ForEachMapBySort(values, func(field string, value any) {
		args = append(args, field, value)
	})
	return c.rdb.HSet(ctx, c.key(key), args...).Result()
}

// HashSetStruct sets the fields of a struct pointer tagged with `redis:"name"`.
func (c *Client) HashSetStruct(ctx context.Context, key string, value any) (int64, error) {
	return c.rdb.HSet(ctx, c.key(key), value).Result()
}

func (c *Client) HashGet(ctx context.Context, key, field string) (string, error) {
	return c.rdb.HGet(ctx, c.key(key), field).Result()
}

// HashGetFields zips fields with their HMGET values. Missing fields are left
// out of the map.
func (c *Client) HashGetFields(ctx context.Context, key string, fields ...string) (map[string]string, error) {
	if len(fields) == 0 {
		return map[string]string{}, nil
	}
	values, err := c.rdb.HMGet(ctx, c.key(key), fields...).Result()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(fields))
	for i, field := range fields {
		if i >= len(values) || values[i] == nil {
			continue
		}
		out[field] = cast.ToString(values[i])
	}
	return out, nil
}

func (c *Client) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	return c.rdb.HGetAll(ctx, c.key(key)).Result()
}

// HashScanAll loads the hash into a struct pointer with `redis` tags.
func (c *Client) HashScanAll(ctx context.Context, key string, dst any) error {
	return c.rdb.HGetAll(ctx, c.key(key)).Scan(dst)
}

func (c *Client) HashDelete(ctx context.Context, key string, fields ...string) (int64, error) {
	return c.rdb.HDel(ctx, c.key(key), fields...).Result()
}

func (c *Client) HashExists(ctx context.Context, key, field string) (bool, error) {
	return c.rdb.HExists(ctx, c.key(key), field).Result()
}

func (c *Client) HashIncrBy(ctx context.Context, key, field string, incr int64) (int64, error) {
	return c.rdb.HIncrBy(ctx, c.key(key), field, incr).Result()
}

func (c *Client) HashIncrByFloat(ctx context.Context, key, field string, incr float64) (float64, error) {
	return c.rdb.HIncrByFloat(ctx, c.key(key), field, incr).Result()
}

func (c *Client) HashKeys(ctx context.Context, key string) ([]string, error) {
	return c.rdb.HKeys(ctx, c.key(key)).Result()
}

func (c *Client) HashValues(ctx context.Context, key string) ([]string, error) {
	return c.rdb.HVals(ctx, c.key(key)).Result()
}

func (c *Client) HashLen(ctx context.Context, key string) (int64, error) {
	return c.rdb.HLen(ctx, c.key(key)).Result()
}

// HashExpire sets a per field expiry. Each result is 1 when set, 0 when a
// condition failed, 2 when expiry was 0 and the field was deleted, or -2 when
// the field does not exist.
func (c *Client) HashExpire(ctx context.Context, key string, expiry time.Duration, fields ...string) ([]int64, error) {
	return c.rdb.HExpire(ctx, c.key(key), expiry, fields...).Result()
}

// HashTTL returns seconds left per field: -1 without expiry, -2 when missing.
func (c *Client) HashTTL(ctx context.Context, key string, fields ...string) ([]int64, error) {
	return c.rdb.HTTL(ctx, c.key(key), fields...).Result()
}

func (c *Client) HashPersist(ctx context.Context, key string, fields ...string) ([]int64, error) {
	return c.rdb.HPersist(ctx, c.key(key), fields...).Result()
}

func (c *Client) HashRandField(ctx context.Context, key string, count int) ([]string, error) {
	return c.rdb.HRandField(ctx, c.key(key), count).Result()
}

// HashScan walks the hash with HSCAN and collects matching fields.
func (c *Client) HashScan(ctx context.Context, key, match string, count int64) (map[string]string, error) {
	out := make(map[string]string)
	iter := c.rdb.HScan(ctx, c.key(key), 0, match, count).Iterator()
	for iter.Next(ctx) {
		field := iter.Val()
		if !iter.Next(ctx) {
			break
		}
		out[field] = iter.Val()
	}
	return out, iter.Err()
}
