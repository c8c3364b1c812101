package queue

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/arklib/redix"
)

const messageField = "message"

// RedisDriver maps topics to streams and tasks to consumer groups.
type RedisDriver struct {
	client    *redix.Client
	maxLen    int64
	minAge    time.Duration
	block     time.Duration
	count     int64
	claimIdle time.Duration
	logger    hlog.FullLogger
}

func NewRedisDriver(client *redix.Client) *RedisDriver {
	return &RedisDriver{
		client: client,
		block:  time.Second,
		count:  10,
		logger: client.Logger(),
	}
}

// WithMaxLen trims each topic to about n entries on produce.
func (r *RedisDriver) WithMaxLen(n int64) *RedisDriver {
	r.maxLen = n
	return r
}

// WithTTL trims entries older than ttl on produce.
func (r *RedisDriver) WithTTL(ttl time.Duration) *RedisDriver {
	r.minAge = ttl
	return r
}

func (r *RedisDriver) WithBlock(block time.Duration, count int64) *RedisDriver {
	if block > 0 {
		r.block = block
	}
	if count > 0 {
		r.count = count
	}
	return r
}

// WithClaimIdle makes consumers take over messages left pending longer than
// idle, such as those whose handler failed or whose consumer died.
func (r *RedisDriver) WithClaimIdle(idle time.Duration) *RedisDriver {
	r.claimIdle = idle
	return r
}

func (r *RedisDriver) Produce(ctx context.Context, topic string, message []byte) error {
	args := &redis.XAddArgs{
		Stream: topic,
		Values: map[string]any{messageField: string(message)},
	}
	switch {
	case r.maxLen > 0:
		args.MaxLen = r.maxLen
		args.Approx = true
	case r.minAge > 0:
		args.MinID = minID(time.Now().Add(-r.minAge))
		args.Approx = true
	}
	_, err := r.client.StreamAddArgs(ctx, args)
	return err
}

func (r *RedisDriver) Consume(ctx context.Context, topic, group string, handler ConsumeTaskHandler) error {
	if err := r.client.StreamGroupCreate(ctx, topic, group, "0"); err != nil {
		return err
	}

	consumer := group + ":" + uuid.NewString()
	args := &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{topic, ">"},
		Count:    r.count,
		Block:    r.block,
	}
	for {
		if ctx.Err() != nil {
			return nil
		}

		if r.claimIdle > 0 {
			r.claim(ctx, topic, group, consumer, handler)
		}

		streams, err := r.client.StreamReadGroup(ctx, args)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			r.logger.CtxErrorf(ctx, "[queue.xReadGroup] topic: %s, group: %s, error: %s", topic, group, err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		for _, stream := range streams {
			r.handle(ctx, topic, group, stream.Messages, handler)
		}
	}
}

func (r *RedisDriver) claim(ctx context.Context, topic, group, consumer string, handler ConsumeTaskHandler) {
	messages, _, err := r.client.StreamAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   topic,
		Group:    group,
		Consumer: consumer,
		MinIdle:  r.claimIdle,
		Start:    "0",
		Count:    r.count,
	})
	if err != nil {
		if ctx.Err() == nil {
			r.logger.CtxWarnf(ctx, "[queue.xAutoClaim] topic: %s, group: %s, error: %s", topic, group, err)
		}
		return
	}
	r.handle(ctx, topic, group, messages, handler)
}

func (r *RedisDriver) handle(ctx context.Context, topic, group string, messages []redis.XMessage, handler ConsumeTaskHandler) {
	for _, message := range messages {
		rawMessage, ok := message.Values[messageField].(string)
		if ok {
			if err := handler(ctx, []byte(rawMessage)); err != nil {
				r.logger.CtxWarnf(ctx, "[queue.handle] topic: %s, group: %s, messageId: %s, error: %s",
					topic, group, message.ID, err)
				continue
			}
		}

		// a handled message is acked even when ctx was cancelled meanwhile
		if _, err := r.client.StreamAck(context.WithoutCancel(ctx), topic, group, message.ID); err != nil {
			r.logger.CtxErrorf(ctx, "[queue.xAck] topic: %s, group: %s, messageId: %s, error: %s",
				topic, group, message.ID, err)
		}
	}
}

func minID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
