package redix

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type MessageHandler func(ctx context.Context, msg *redis.Message) error

// Channels are never prefixed.

func (c *Client) Publish(ctx context.Context, channel string, message any) (int64, error) {
	return c.rdb.Publish(ctx, channel, message).Result()
}

// Subscribe returns the raw subscription; the caller closes it.
func (c *Client) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return c.rdb.Subscribe(ctx, channels...)
}

func (c *Client) PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub {
	return c.rdb.PSubscribe(ctx, patterns...)
}

// SubscribeFunc subscribes to channels and hands every message to handler
// until ctx is done or handler fails.
func (c *Client) SubscribeFunc(ctx context.Context, handler MessageHandler, channels ...string) error {
	return c.consume(ctx, c.rdb.Subscribe(ctx, channels...), handler)
}

func (c *Client) PSubscribeFunc(ctx context.Context, handler MessageHandler, patterns ...string) error {
	return c.consume(ctx, c.rdb.PSubscribe(ctx, patterns...), handler)
}

func (c *Client) consume(ctx context.Context, ps *redis.PubSub, handler MessageHandler) error {
	defer ps.Close()

	// wait for the subscription confirmation
	if _, err := ps.Receive(ctx); err != nil {
		return err
	}

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := handler(ctx, msg); err != nil {
				c.logger.CtxErrorf(ctx, "[redix.subscribe] channel: %s, error: %v", msg.Channel, err)
				return err
			}
		}
	}
}

func (c *Client) PubSubChannels(ctx context.Context, pattern string) ([]string, error) {
	return c.rdb.PubSubChannels(ctx, pattern).Result()
}

func (c *Client) PubSubNumSub(ctx context.Context, channels ...string) (map[string]int64, error) {
	return c.rdb.PubSubNumSub(ctx, channels...).Result()
}

func (c *Client) PubSubNumPat(ctx context.Context) (int64, error) {
	return c.rdb.PubSubNumPat(ctx).Result()
}
