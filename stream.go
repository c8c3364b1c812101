package redix

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// StreamAdd appends an entry with an auto generated id.
func (c *Client) StreamAdd(ctx context.Context, stream string, values map[string]any) (string, error) {
	return c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: c.key(stream),
		Values: values,
	}).Result()
}

// StreamAddMaxLen appends and trims the stream to about maxLen entries.
func (c *Client) StreamAddMaxLen(ctx context.Context, stream string, maxLen int64, values map[string]any) (string, error) {
	return c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: c.key(stream),
		MaxLen: maxLen,
		Approx: true,
		Values: values,
	}).Result()
}

// StreamAddMinID appends and evicts entries with ids lower than minID.
func (c *Client) StreamAddMinID(ctx context.Context, stream, minID string, values map[string]any) (string, error) {
	return c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: c.key(stream),
		MinID:  minID,
		Values: values,
	}).Result()
}

func (c *Client) StreamAddArgs(ctx context.Context, args *redis.XAddArgs) (string, error) {
	a := *args
	a.Stream = c.key(args.Stream)
	return c.rdb.XAdd(ctx, &a).Result()
}

func (c *Client) StreamDelete(ctx context.Context, stream string, ids ...string) (int64, error) {
	return c.rdb.XDel(ctx, c.key(stream), ids...).Result()
}

func (c *Client) StreamLen(ctx context.Context, stream string) (int64, error) {
	return c.rdb.XLen(ctx, c.key(stream)).Result()
}

func (c *Client) StreamRange(ctx context.Context, stream, start, stop string) ([]redis.XMessage, error) {
	return c.rdb.XRange(ctx, c.key(stream), start, stop).Result()
}

func (c *Client) StreamRangeN(ctx context.Context, stream, start, stop string, count int64) ([]redis.XMessage, error) {
	return c.rdb.XRangeN(ctx, c.key(stream), start, stop, count).Result()
}

func (c *Client) StreamRevRange(ctx context.Context, stream, start, stop string) ([]redis.XMessage, error) {
	return c.rdb.XRevRange(ctx, c.key(stream), start, stop).Result()
}

func (c *Client) StreamRevRangeN(ctx context.Context, stream, start, stop string, count int64) ([]redis.XMessage, error) {
	return c.rdb.XRevRangeN(ctx, c.key(stream), start, stop, count).Result()
}

// StreamRead runs XREAD. args.Streams holds stream names then ids; returned
// stream names have the prefix removed.
func (c *Client) StreamRead(ctx context.Context, args *redis.XReadArgs) ([]redis.XStream, error) {
	a := *args
	a.Streams = c.streams(args.Streams)
	res, err := c.rdb.XRead(ctx, &a).Result()
	return c.trimStreams(res), err
}

func (c *Client) StreamReadGroup(ctx context.Context, args *redis.XReadGroupArgs) ([]redis.XStream, error) {
	a := *args
	a.Streams = c.streams(args.Streams)
	res, err := c.rdb.XReadGroup(ctx, &a).Result()
	return c.trimStreams(res), err
}

// StreamGroupCreate creates the group and the stream if needed. An existing
// group is not an error.
func (c *Client) StreamGroupCreate(ctx context.Context, stream, group, start string) error {
	err := c.rdb.XGroupCreateMkStream(ctx, c.key(stream), group, start).Err()
	if err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil
	}
	return err
}

func (c *Client) StreamGroupDestroy(ctx context.Context, stream, group string) (int64, error) {
	return c.rdb.XGroupDestroy(ctx, c.key(stream), group).Result()
}

func (c *Client) StreamGroupSetID(ctx context.Context, stream, group, start string) error {
	return c.rdb.XGroupSetID(ctx, c.key(stream), group, start).Err()
}

func (c *Client) StreamGroupCreateConsumer(ctx context.Context, stream, group, consumer string) (int64, error) {
	return c.rdb.XGroupCreateConsumer(ctx, c.key(stream), group, consumer).Result()
}

func (c *Client) StreamGroupDeleteConsumer(ctx context.Context, stream, group, consumer string) (int64, error) {
	return c.rdb.XGroupDelConsumer(ctx, c.key(stream), group, consumer).Result()
}

func (c *Client) StreamAck(ctx context.Context, stream, group string, ids ...string) (int64, error) {
	return c.rdb.XAck(ctx, c.key(stream), group, ids...).Result()
}

func (c *Client) StreamPending(ctx context.Context, stream, group string) (*redis.XPending, error) {
	return c.rdb.XPending(ctx, c.key(stream), group).Result()
}

func (c *Client) StreamPendingExt(ctx context.Context, args *redis.XPendingExtArgs) ([]redis.XPendingExt, error) {
	a := *args
	a.Stream = c.key(args.Stream)
	return c.rdb.XPendingExt(ctx, &a).Result()
}

func (c *Client) StreamClaim(ctx context.Context, args *redis.XClaimArgs) ([]redis.XMessage, error) {
	a := *args
	a.Stream = c.key(args.Stream)
	return c.rdb.XClaim(ctx, &a).Result()
}

// StreamAutoClaim returns the claimed entries and the cursor for the next call.
func (c *Client) StreamAutoClaim(ctx context.Context, args *redis.XAutoClaimArgs) ([]redis.XMessage, string, error) {
	a := *args
	a.Stream = c.key(args.Stream)
	return c.rdb.XAutoClaim(ctx, &a).Result()
}

func (c *Client) StreamTrimMaxLen(ctx context.Context, stream string, maxLen int64) (int64, error) {
	return c.rdb.XTrimMaxLen(ctx, c.key(stream), maxLen).Result()
}

func (c *Client) StreamTrimMinID(ctx context.Context, stream, minID string) (int64, error) {
	return c.rdb.XTrimMinID(ctx, c.key(stream), minID).Result()
}

func (c *Client) StreamInfo(ctx context.Context, stream string) (*redis.XInfoStream, error) {
	return c.rdb.XInfoStream(ctx, c.key(stream)).Result()
}

func (c *Client) StreamGroupInfo(ctx context.Context, stream string) ([]redis.XInfoGroup, error) {
	return c.rdb.XInfoGroups(ctx, c.key(stream)).Result()
}

func (c *Client) StreamConsumerInfo(ctx context.Context, stream, group string) ([]redis.XInfoConsumer, error) {
	return c.rdb.XInfoConsumers(ctx, c.key(stream), group).Result()
}

func (c *Client) trimStreams(streams []redis.XStream) []redis.XStream {
	if c.prefix == "" {
		return streams
	}
	for i := range streams {
		streams[i].Stream = c.trim(streams[i].Stream)
	}
	return streams
}
