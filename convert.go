package redix

import (
	"context"
	"encoding"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/arklib/redix/serializer"
)

// Encode returns value unchanged when go-redis writes it natively and the
// serializer output otherwise.
func (c *Client) Encode(value any) (any, error) {
	return encodeValue(c.serializer, value)
}

func encodeValue(s serializer.Serializer, value any) (any, error) {
	switch value.(type) {
	case nil:
		return "", nil
	case string, []byte, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, time.Time, encoding.BinaryMarshaler:
		return value, nil
	}

	data, err := s.Encode(value)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *Client) encodeAll(values []any) ([]any, error) {
	out := make([]any, len(values))
	for i, value := range values {
		v, err := c.Encode(value)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// decodeValue hands strings and bytes over raw, scans primitives the way
// go-redis scans replies and runs the serializer for everything else.
func decodeValue[T any](s serializer.Serializer, raw string) (out T, err error) {
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *[]byte:
		*p = []byte(raw)
	case *bool, *int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64, *time.Time, encoding.BinaryUnmarshaler:
		err = redis.NewStringResult(raw, nil).Scan(p)
	default:
		err = s.Decode([]byte(raw), p)
	}
	return
}

func decodeAll[T any](s serializer.Serializer, raws []string) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decodeValue[T](s, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Client) StringSetValue(ctx context.Context, key string, value any, expiry time.Duration) error {
	v, err := c.Encode(value)
	if err != nil {
		return err
	}
	return c.StringSet(ctx, key, v, expiry)
}

func (c *Client) HashSetValue(ctx context.Context, key, field string, value any) (bool, error) {
	v, err := c.Encode(value)
	if err != nil {
		return false, err
	}
	return c.HashSet(ctx, key, field, v)
}

// HashSetValues encodes every value of values before a bulk HSET.
func (c *Client) HashSetValues(ctx context.Context, key string, values map[string]any) (int64, error) {
	encoded := make(map[string]any, len(values))
	for field, value := range values {
		v, err := c.Encode(value)
		if err != nil {
			return 0, err
		}
		encoded[field] = v
	}
	return c.HashSetMap(ctx, key, encoded)
}

func (c *Client) ListPushValues(ctx context.Context, key string, values ...any) (int64, error) {
	encoded, err := c.encodeAll(values)
	if err != nil {
		return 0, err
	}
	return c.ListRightPush(ctx, key, encoded...)
}

func (c *Client) SetAddValues(ctx context.Context, key string, values ...any) (int64, error) {
	encoded, err := c.encodeAll(values)
	if err != nil {
		return 0, err
	}
	return c.SetAdd(ctx, key, encoded...)
}

// GetAs reads a string key into T. A missing key returns redis.Nil.
func GetAs[T any](ctx context.Context, c *Client, key string) (T, error) {
	raw, err := c.StringGet(ctx, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeValue[T](c.serializer, raw)
}

// MGetAs decodes the found keys; missing keys are left out of the map.
func MGetAs[T any](ctx context.Context, c *Client, keys ...string) (map[string]T, error) {
	values, err := c.StringMGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]T, len(keys))
	for i, key := range keys {
		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		v, err := decodeValue[T](c.serializer, raw)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func HashGetAs[T any](ctx context.Context, c *Client, key, field string) (T, error) {
	raw, err := c.HashGet(ctx, key, field)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeValue[T](c.serializer, raw)
}

func HashGetAllAs[T any](ctx context.Context, c *Client, key string) (map[string]T, error) {
	raws, err := c.HashGetAll(ctx, key)
	if err != nil {
		return nil, err
	}

	out := make(map[string]T, len(raws))
	for field, raw := range raws {
		v, err := decodeValue[T](c.serializer, raw)
		if err != nil {
			return nil, err
		}
		out[field] = v
	}
	return out, nil
}

func ListRangeAs[T any](ctx context.Context, c *Client, key string, start, stop int64) ([]T, error) {
	raws, err := c.ListRange(ctx, key, start, stop)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](c.serializer, raws)
}

func SetMembersAs[T any](ctx context.Context, c *Client, key string) ([]T, error) {
	raws, err := c.SetMembers(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](c.serializer, raws)
}

// ListPopAs pops from the left. ok is false when the list is empty.
func ListPopAs[T any](ctx context.Context, c *Client, key string) (value T, ok bool, err error) {
	raw, err := c.ListLeftPop(ctx, key)
	if errors.Is(err, redis.Nil) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	value, err = decodeValue[T](c.serializer, raw)
	return value, err == nil, err
}

// Strings converts a reply slice from MGET/HMGET to strings; nil entries
// become "".
func Strings(values []any) []string {
	return lo.Map(values, func(v any, _ int) string {
		s, _ := v.(string)
		return s
	})
}
