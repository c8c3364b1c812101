package redix

import (
	"context"
)

func (c *Client) SetAdd(ctx context.Context, key string, members ...any) (int64, error) {
	return c.rdb.SAdd(ctx, c.key(key), members...).Result()
}

func (c *Client) SetRemove(ctx context.Context, key string, members ...any) (int64, error) {
	return c.rdb.SRem(ctx, c.key(key), members...).Result()
}

func (c *Client) SetMembers(ctx context.Context, key string) ([]string, error) {
	return c.rdb.SMembers(ctx, c.key(key)).Result()
}

func (c *Client) SetContains(ctx context.Context, key string, member any) (bool, error) {
	return c.rdb.SIsMember(ctx, c.key(key), member).Result()
}

func (c *Client) SetContainsMany(ctx context.Context, key string, members ...any) ([]bool, error) {
	return c.rdb.SMIsMember(ctx, c.key(key), members...).Result()
}

func (c *Client) SetLen(ctx context.Context, key string) (int64, error) {
	return c.rdb.SCard(ctx, c.key(key)).Result()
}

func (c *Client) SetPop(ctx context.Context, key string) (string, error) {
	return c.rdb.SPop(ctx, c.key(key)).Result()
}

func (c *Client) SetPopN(ctx context.Context, key string, count int64) ([]string, error) {
	return c.rdb.SPopN(ctx, c.key(key), count).Result()
}

func (c *Client) SetRandomMember(ctx context.Context, key string) (string, error) {
	return c.rdb.SRandMember(ctx, c.key(key)).Result()
}

func (c *Client) SetRandomMembers(ctx context.Context, key string, count int64) ([]string, error) {
	return c.rdb.SRandMemberN(ctx, c.key(key), count).Result()
}

func (c *Client) SetMove(ctx context.Context, src, dst string, member any) (bool, error) {
	return c.rdb.SMove(ctx, c.key(src), c.key(dst), member).Result()
}

func (c *Client) SetUnion(ctx context.Context, keys ...string) ([]string, error) {
	return c.rdb.SUnion(ctx, c.keys(keys)...).Result()
}

func (c *Client) SetIntersect(ctx context.Context, keys ...string) ([]string, error) {
	return c.rdb.SInter(ctx, c.keys(keys)...).Result()
}

func (c *Client) SetDifference(ctx context.Context, keys ...string) ([]string, error) {
	return c.rdb.SDiff(ctx, c.keys(keys)...).Result()
}

func (c *Client) SetUnionStore(ctx context.Context, dest string, keys ...string) (int64, error) {
	return c.rdb.SUnionStore(ctx, c.key(dest), c.keys(keys)...).Result()
}

func (c *Client) SetIntersectStore(ctx context.Context, dest string, keys ...string) (int64, error) {
	return c.rdb.SInterStore(ctx, c.key(dest), c.keys(keys)...).Result()
}

func (c *Client) SetDifferenceStore(ctx context.Context, dest string, keys ...string) (int64, error) {
	return c.rdb.SDiffStore(ctx, c.key(dest), c.keys(keys)...).Result()
}

// SetIntersectCard runs SINTERCARD; limit 0 means no limit.
func (c *Client) SetIntersectCard(ctx context.Context, limit int64, keys ...string) (int64, error) {
	return c.rdb.SInterCard(ctx, limit, c.keys(keys)...).Result()
}

func (c *Client) SetScan(ctx context.Context, key, match string, count int64) ([]string, error) {
	var members []string
	iter := c.rdb.SScan(ctx, c.key(key), 0, match, count).Iterator()
	for iter.Next(ctx) {
		members = append(members, iter.Val())
	}
	return members, iter.Err()
}
