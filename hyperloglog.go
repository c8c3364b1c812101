package redix

import (
	"context"
)

// HyperLogLogAdd reports whether the estimated cardinality changed.
func (c *Client) HyperLogLogAdd(ctx context.Context, key string, elements ...any) (bool, error) {
	n, err := c.rdb.PFAdd(ctx, c.key(key), elements...).Result()
	return n == 1, err
}

func (c *Client) HyperLogLogCount(ctx context.Context, keys ...string) (int64, error) {
	return c.rdb.PFCount(ctx, c.keys(keys)...).Result()
}

func (c *Client) HyperLogLogMerge(ctx context.Context, dest string, keys ...string) error {
	return c.rdb.PFMerge(ctx, c.key(dest), c.keys(keys)...).Err()
}
