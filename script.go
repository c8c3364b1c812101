package redix

import (
	"context"

	"github.com/redis/go-redis/v9"
)

func (c *Client) ScriptEvaluate(ctx context.Context, script string, keys []string, args ...any) (any, error) {
	return c.rdb.Eval(ctx, script, c.keys(keys), args...).Result()
}

func (c *Client) ScriptEvaluateSha(ctx context.Context, sha1 string, keys []string, args ...any) (any, error) {
	return c.rdb.EvalSha(ctx, sha1, c.keys(keys), args...).Result()
}

func (c *Client) ScriptEvaluateRO(ctx context.Context, script string, keys []string, args ...any) (any, error) {
	return c.rdb.EvalRO(ctx, script, c.keys(keys), args...).Result()
}

func (c *Client) ScriptLoad(ctx context.Context, script string) (string, error) {
	return c.rdb.ScriptLoad(ctx, script).Result()
}

func (c *Client) ScriptExists(ctx context.Context, hashes ...string) ([]bool, error) {
	return c.rdb.ScriptExists(ctx, hashes...).Result()
}

func (c *Client) ScriptFlush(ctx context.Context) error {
	return c.rdb.ScriptFlush(ctx).Err()
}

// ScriptRun tries EVALSHA and falls back to EVAL when the script is not cached.
func (c *Client) ScriptRun(ctx context.Context, script *redis.Script, keys []string, args ...any) (any, error) {
	return script.Run(ctx, c.rdb, c.keys(keys), args...).Result()
}

// Execute sends an arbitrary command. Arguments are not prefixed.
func (c *Client) Execute(ctx context.Context, args ...any) (any, error) {
	return c.rdb.Do(ctx, args...).Result()
}
