package redix

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// SortedSetAdd reports whether member was added rather than updated.
func (c *Client) SortedSetAdd(ctx context.Context, key string, member any, score float64) (bool, error) {
	n, err := c.rdb.ZAdd(ctx, c.key(key), redis.Z{Score: score, Member: member}).Result()
	return n == 1, err
}

func (c *Client) SortedSetAddMany(ctx context.Context, key string, members ...redis.Z) (int64, error) {
	return c.rdb.ZAdd(ctx, c.key(key), members...).Result()
}

func (c *Client) SortedSetAddNX(ctx context.Context, key string, members ...redis.Z) (int64, error) {
	return c.rdb.ZAddNX(ctx, c.key(key), members...).Result()
}

func (c *Client) SortedSetAddXX(ctx context.Context, key string, members ...redis.Z) (int64, error) {
	return c.rdb.ZAddXX(ctx, c.key(key), members...).Result()
}

func (c *Client) SortedSetIncrBy(ctx context.Context, key, member string, incr float64) (float64, error) {
	return c.rdb.ZIncrBy(ctx, c.key(key), incr, member).Result()
}

func (c *Client) SortedSetRemove(ctx context.Context, key string, members ...any) (int64, error) {
	return c.rdb.ZRem(ctx, c.key(key), members...).Result()
}

func (c *Client) SortedSetScore(ctx context.Context, key, member string) (float64, error) {
	return c.rdb.ZScore(ctx, c.key(key), member).Result()
}

func (c *Client) SortedSetScores(ctx context.Context, key string, members ...string) ([]float64, error) {
	return c.rdb.ZMScore(ctx, c.key(key), members...).Result()
}

func (c *Client) SortedSetRank(ctx context.Context, key, member string) (int64, error) {
	return c.rdb.ZRank(ctx, c.key(key), member).Result()
}

func (c *Client) SortedSetRevRank(ctx context.Context, key, member string) (int64, error) {
	return c.rdb.ZRevRank(ctx, c.key(key), member).Result()
}

func (c *Client) SortedSetLen(ctx context.Context, key string) (int64, error) {
	return c.rdb.ZCard(ctx, c.key(key)).Result()
}

// SortedSetCount counts members with min <= score <= max ("-inf", "(1" ...).
func (c *Client) SortedSetCount(ctx context.Context, key, min, max string) (int64, error) {
	return c.rdb.ZCount(ctx, c.key(key), min, max).Result()
}

func (c *Client) SortedSetLexCount(ctx context.Context, key, min, max string) (int64, error) {
	return c.rdb.ZLexCount(ctx, c.key(key), min, max).Result()
}

func (c *Client) SortedSetRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return c.rdb.ZRange(ctx, c.key(key), start, stop).Result()
}

func (c *Client) SortedSetRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error) {
	return c.rdb.ZRangeWithScores(ctx, c.key(key), start, stop).Result()
}

func (c *Client) SortedSetRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return c.rdb.ZRevRange(ctx, c.key(key), start, stop).Result()
}

func (c *Client) SortedSetRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error) {
	return c.rdb.ZRevRangeWithScores(ctx, c.key(key), start, stop).Result()
}

func (c *Client) SortedSetRangeByScore(ctx context.Context, key string, by *redis.ZRangeBy) ([]string, error) {
	return c.rdb.ZRangeByScore(ctx, c.key(key), by).Result()
}

func (c *Client) SortedSetRangeByScoreWithScores(ctx context.Context, key string, by *redis.ZRangeBy) ([]redis.Z, error) {
	return c.rdb.ZRangeByScoreWithScores(ctx, c.key(key), by).Result()
}

func (c *Client) SortedSetRevRangeByScore(ctx context.Context, key string, by *redis.ZRangeBy) ([]string, error) {
	return c.rdb.ZRevRangeByScore(ctx, c.key(key), by).Result()
}

func (c *Client) SortedSetRangeByLex(ctx context.Context, key string, by *redis.ZRangeBy) ([]string, error) {
	return c.rdb.ZRangeByLex(ctx, c.key(key), by).Result()
}

func (c *Client) SortedSetRevRangeByScoreWithScores(ctx context.Context, key string, by *redis.ZRangeBy) ([]redis.Z, error) {
	return c.rdb.ZRevRangeByScoreWithScores(ctx, c.key(key), by).Result()
}

func (c *Client) SortedSetRevRangeByLex(ctx context.Context, key string, by *redis.ZRangeBy) ([]string, error) {
	return c.rdb.ZRevRangeByLex(ctx, c.key(key), by).Result()
}

func (c *Client) SortedSetRemoveRangeByRank(ctx context.Context, key string, start, stop int64) (int64, error) {
	return c.rdb.ZRemRangeByRank(ctx, c.key(key), start, stop).Result()
}

func (c *Client) SortedSetRemoveRangeByScore(ctx context.Context, key, min, max string) (int64, error) {
	return c.rdb.ZRemRangeByScore(ctx, c.key(key), min, max).Result()
}

func (c *Client) SortedSetRemoveRangeByLex(ctx context.Context, key, min, max string) (int64, error) {
	return c.rdb.ZRemRangeByLex(ctx, c.key(key), min, max).Result()
}

func (c *Client) SortedSetPopMin(ctx context.Context, key string, count ...int64) ([]redis.Z, error) {
	return c.rdb.ZPopMin(ctx, c.key(key), count...).Result()
}

func (c *Client) SortedSetPopMax(ctx context.Context, key string, count ...int64) ([]redis.Z, error) {
	return c.rdb.ZPopMax(ctx, c.key(key), count...).Result()
}

func (c *Client) SortedSetBlockPopMin(ctx context.Context, timeout time.Duration, keys ...string) (*redis.ZWithKey, error) {
	res, err := c.rdb.BZPopMin(ctx, timeout, c.keys(keys)...).Result()
	if res != nil {
		res.Key = c.trim(res.Key)
	}
	return res, err
}

func (c *Client) SortedSetBlockPopMax(ctx context.Context, timeout time.Duration, keys ...string) (*redis.ZWithKey, error) {
	res, err := c.rdb.BZPopMax(ctx, timeout, c.keys(keys)...).Result()
	if res != nil {
		res.Key = c.trim(res.Key)
	}
	return res, err
}

func (c *Client) SortedSetUnionStore(ctx context.Context, dest string, store *redis.ZStore) (int64, error) {
	return c.rdb.ZUnionStore(ctx, c.key(dest), c.zstore(store)).Result()
}

func (c *Client) SortedSetInterStore(ctx context.Context, dest string, store *redis.ZStore) (int64, error) {
	return c.rdb.ZInterStore(ctx, c.key(dest), c.zstore(store)).Result()
}

func (c *Client) SortedSetDiffStore(ctx context.Context, dest string, keys ...string) (int64, error) {
	return c.rdb.ZDiffStore(ctx, c.key(dest), c.keys(keys)...).Result()
}

func (c *Client) SortedSetRandomMembers(ctx context.Context, key string, count int) ([]string, error) {
	return c.rdb.ZRandMember(ctx, c.key(key), count).Result()
}

// SortedSetScan walks the set with ZSCAN.
func (c *Client) SortedSetScan(ctx context.Context, key, match string, count int64) ([]redis.Z, error) {
	var members []redis.Z
	iter := c.rdb.ZScan(ctx, c.key(key), 0, match, count).Iterator()
	for iter.Next(ctx) {
		member := iter.Val()
		if !iter.Next(ctx) {
			break
		}
		members = append(members, redis.Z{Member: member, Score: cast.ToFloat64(iter.Val())})
	}
	return members, iter.Err()
}

func (c *Client) zstore(store *redis.ZStore) *redis.ZStore {
	if store == nil || c.prefix == "" {
		return store
	}
	out := *store
	out.Keys = c.keys(store.Keys)
	return &out
}
