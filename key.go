package redix

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

func (c *Client) KeyDelete(ctx context.Context, keys ...string) (int64, error) {
	return c.rdb.Del(ctx, c.keys(keys)...).Result()
}

func (c *Client) KeyUnlink(ctx context.Context, keys ...string) (int64, error) {
	return c.rdb.Unlink(ctx, c.keys(keys)...).Result()
}

// KeyExists returns how many of keys exist.
func (c *Client) KeyExists(ctx context.Context, keys ...string) (int64, error) {
	return c.rdb.Exists(ctx, c.keys(keys)...).Result()
}

func (c *Client) KeyExpire(ctx context.Context, key string, expiry time.Duration) (bool, error) {
	return c.rdb.Expire(ctx, c.key(key), expiry).Result()
}

func (c *Client) KeyExpireAt(ctx context.Context, key string, at time.Time) (bool, error) {
	return c.rdb.ExpireAt(ctx, c.key(key), at).Result()
}

func (c *Client) KeyPExpire(ctx context.Context, key string, expiry time.Duration) (bool, error) {
	return c.rdb.PExpire(ctx, c.key(key), expiry).Result()
}

func (c *Client) KeyPersist(ctx context.Context, key string) (bool, error) {
	return c.rdb.Persist(ctx, c.key(key)).Result()
}

// KeyTTL follows go-redis: -1 for no expiry, -2 for a missing key.
func (c *Client) KeyTTL(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.TTL(ctx, c.key(key)).Result()
}

func (c *Client) KeyPTTL(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.PTTL(ctx, c.key(key)).Result()
}

func (c *Client) KeyExpireTime(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.ExpireTime(ctx, c.key(key)).Result()
}

func (c *Client) KeyType(ctx context.Context, key string) (string, error) {
	return c.rdb.Type(ctx, c.key(key)).Result()
}

func (c *Client) KeyRename(ctx context.Context, key, newKey string) error {
	return c.rdb.Rename(ctx, c.key(key), c.key(newKey)).Err()
}

func (c *Client) KeyRenameNX(ctx context.Context, key, newKey string) (bool, error) {
	return c.rdb.RenameNX(ctx, c.key(key), c.key(newKey)).Result()
}

// KeyRandom may return a key outside the prefix, unchanged.
func (c *Client) KeyRandom(ctx context.Context) (string, error) {
	key, err := c.rdb.RandomKey(ctx).Result()
	return c.trim(key), err
}

// KeyKeys treats an empty pattern as "*".
func (c *Client) KeyKeys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := c.rdb.Keys(ctx, c.match(pattern)).Result()
	if err != nil {
		return nil, err
	}
	return c.trimAll(keys), nil
}

// KeyScan walks the whole keyspace with SCAN; an empty match is "*". On a
// cluster every master is scanned.
func (c *Client) KeyScan(ctx context.Context, match string, count int64) ([]string, error) {
	match = c.match(match)

	cluster, ok := c.rdb.(*redis.ClusterClient)
	if !ok {
		keys, err := scanKeys(ctx, c.rdb, match, count)
		return c.trimAll(keys), err
	}

	var (
		mu   sync.Mutex
		keys []string
	)
	err := cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
		nodeKeys, err := scanKeys(ctx, node, match, count)
		if err != nil {
			return err
		}
		mu.Lock()
		keys = append(keys, nodeKeys...)
		mu.Unlock()
		return nil
	})
	return c.trimAll(keys), err
}

// match prefixes a key pattern, reading an empty pattern as every key.
func (c *Client) match(pattern string) string {
	if pattern == "" {
		pattern = "*"
	}
	return c.key(pattern)
}

func scanKeys(ctx context.Context, rdb redis.Cmdable, match string, count int64) ([]string, error) {
	var keys []string
	iter := rdb.Scan(ctx, 0, match, count).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

func (c *Client) KeyDump(ctx context.Context, key string) (string, error) {
	return c.rdb.Dump(ctx, c.key(key)).Result()
}

func (c *Client) KeyRestore(ctx context.Context, key string, ttl time.Duration, value string) error {
	return c.rdb.Restore(ctx, c.key(key), ttl, value).Err()
}

func (c *Client) KeyTouch(ctx context.Context, keys ...string) (int64, error) {
	return c.rdb.Touch(ctx, c.keys(keys)...).Result()
}

func (c *Client) KeyCopy(ctx context.Context, src, dst string, db int, replace bool) (bool, error) {
	n, err := c.rdb.Copy(ctx, c.key(src), c.key(dst), db, replace).Result()
	return n == 1, err
}

func (c *Client) KeyMove(ctx context.Context, key string, db int) (bool, error) {
	return c.rdb.Move(ctx, c.key(key), db).Result()
}

func (c *Client) KeyPExpireAt(ctx context.Context, key string, at time.Time) (bool, error) {
	return c.rdb.PExpireAt(ctx, c.key(key), at).Result()
}

func (c *Client) KeyPExpireTime(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.PExpireTime(ctx, c.key(key)).Result()
}

// KeyMemoryUsage returns the bytes key and its value take, sampling nested
// values when samples is given.
func (c *Client) KeyMemoryUsage(ctx context.Context, key string, samples ...int) (int64, error) {
	return c.rdb.MemoryUsage(ctx, c.key(key), samples...).Result()
}

func (c *Client) KeyEncoding(ctx context.Context, key string) (string, error) {
	return c.rdb.ObjectEncoding(ctx, c.key(key)).Result()
}

func (c *Client) KeyIdleTime(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.ObjectIdleTime(ctx, c.key(key)).Result()
}
