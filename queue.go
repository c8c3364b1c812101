package redix

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// List backed FIFO queue: LPUSH on the head, RPOP from the tail.

// QueuePush encodes values and pushes them in order. It returns the queue
// length after the push.
func (c *Client) QueuePush(ctx context.Context, queue string, values ...any) (int64, error) {
	encoded, err := c.encodeAll(values)
	if err != nil {
		return 0, err
	}
	return c.ListLeftPush(ctx, queue, encoded...)
}

// QueuePop returns ok false on an empty queue instead of redis.Nil.
func (c *Client) QueuePop(ctx context.Context, queue string) (value string, ok bool, err error) {
	value, err = c.ListRightPop(ctx, queue)
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	return value, err == nil, err
}

// QueueBlockPop waits up to timeout for a value; 0 waits forever.
func (c *Client) QueueBlockPop(ctx context.Context, queue string, timeout time.Duration) (string, bool, error) {
	res, err := c.ListBlockRightPop(ctx, timeout, queue)
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil || len(res) < 2 {
		return "", false, err
	}
	return res[1], true, nil
}

func (c *Client) QueueLen(ctx context.Context, queue string) (int64, error) {
	return c.ListLen(ctx, queue)
}

// QueuePeek returns the next value QueuePop would return.
func (c *Client) QueuePeek(ctx context.Context, queue string) (string, bool, error) {
	value, err := c.ListIndex(ctx, queue, -1)
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	return value, err == nil, err
}

func (c *Client) QueueClear(ctx context.Context, queue string) error {
	return c.rdb.Del(ctx, c.key(queue)).Err()
}

func QueuePopAs[T any](ctx context.Context, c *Client, queue string) (value T, ok bool, err error) {
	raw, ok, err := c.QueuePop(ctx, queue)
	if err != nil || !ok {
		return value, false, err
	}
	value, err = decodeValue[T](c.serializer, raw)
	return value, err == nil, err
}
