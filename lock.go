package redix

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arklib/redix/lock"
)

var (
	releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

	extendScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0`)
)

var _ lock.Driver = (*Client)(nil)

// LockTake sets key to value only if key is absent, with expiry as lease.
func (c *Client) LockTake(ctx context.Context, key, value string, expiry time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, c.key(key), value, expiry).Result()
}

// LockRelease deletes key only while it still holds value.
func (c *Client) LockRelease(ctx context.Context, key, value string) (bool, error) {
	n, err := releaseScript.Run(ctx, c.rdb, []string{c.key(key)}, value).Int64()
	return n == 1, err
}

// LockExtend resets the lease only while key still holds value.
func (c *Client) LockExtend(ctx context.Context, key, value string, expiry time.Duration) (bool, error) {
	n, err := extendScript.Run(ctx, c.rdb, []string{c.key(key)}, value, expiry.Milliseconds()).Int64()
	return n == 1, err
}

// LockQuery returns the current holder value; ok is false when unlocked.
func (c *Client) LockQuery(ctx context.Context, key string) (value string, ok bool, err error) {
	value, err = c.rdb.Get(ctx, c.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	return value, err == nil, err
}

// LockExecute tries once to take key and runs fn while holding it. The lock
// is released by key and value once fn returns.
func (c *Client) LockExecute(ctx context.Context, key, value string, lease time.Duration, fn lock.Handler) (bool, error) {
	return lock.Execute(ctx, c, key, value, lease, fn)
}

// LockExecuteWait polls for the lock every Options.LockRetry until it is
// taken or timeout passes. timeout 0 waits until ctx is done.
func (c *Client) LockExecuteWait(ctx context.Context, key, value string, lease, timeout time.Duration, fn lock.Handler) (bool, error) {
	ok, err := lock.ExecuteWait(ctx, c, key, value, lease, timeout, c.opts.LockRetry, fn)
	if err == nil && !ok {
		c.logger.CtxDebugf(ctx, "[redix.lock] key: %s, not acquired within %s", key, timeout)
	}
	return ok, err
}
