package redix

import (
	"context"

	"github.com/redis/go-redis/v9"
)

func (c *Client) GeoAdd(ctx context.Context, key string, locations ...*redis.GeoLocation) (int64, error) {
	return c.rdb.GeoAdd(ctx, c.key(key), locations...).Result()
}

// GeoRemove removes members with ZREM; geo sets are sorted sets.
func (c *Client) GeoRemove(ctx context.Context, key string, members ...any) (int64, error) {
	return c.rdb.ZRem(ctx, c.key(key), members...).Result()
}

// GeoPosition returns one entry per member, nil for unknown members.
func (c *Client) GeoPosition(ctx context.Context, key string, members ...string) ([]*redis.GeoPos, error) {
	return c.rdb.GeoPos(ctx, c.key(key), members...).Result()
}

// GeoDistance uses unit m, km, mi or ft.
func (c *Client) GeoDistance(ctx context.Context, key, member1, member2, unit string) (float64, error) {
	return c.rdb.GeoDist(ctx, c.key(key), member1, member2, unit).Result()
}

func (c *Client) GeoHash(ctx context.Context, key string, members ...string) ([]string, error) {
	return c.rdb.GeoHash(ctx, c.key(key), members...).Result()
}

func (c *Client) GeoRadius(ctx context.Context, key string, longitude, latitude float64, query *redis.GeoRadiusQuery) ([]redis.GeoLocation, error) {
	return c.rdb.GeoRadius(ctx, c.key(key), longitude, latitude, query).Result()
}

func (c *Client) GeoRadiusByMember(ctx context.Context, key, member string, query *redis.GeoRadiusQuery) ([]redis.GeoLocation, error) {
	return c.rdb.GeoRadiusByMember(ctx, c.key(key), member, query).Result()
}

func (c *Client) GeoSearch(ctx context.Context, key string, query *redis.GeoSearchQuery) ([]string, error) {
	return c.rdb.GeoSearch(ctx, c.key(key), query).Result()
}

func (c *Client) GeoSearchLocation(ctx context.Context, key string, query *redis.GeoSearchLocationQuery) ([]redis.GeoLocation, error) {
	return c.rdb.GeoSearchLocation(ctx, c.key(key), query).Result()
}

func (c *Client) GeoSearchStore(ctx context.Context, key, store string, query *redis.GeoSearchStoreQuery) (int64, error) {
	return c.rdb.GeoSearchStore(ctx, c.key(key), c.key(store), query).Result()
}
