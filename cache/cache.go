package cache

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/arklib/redix/serializer"
	"github.com/arklib/redix/util"
)

var (
	ErrKeyType = errors.New("key type error")
	ErrMiss    = errors.New("cache miss")
)

// Driver stores raw bytes. Get returns ErrMiss for absent keys.
type Driver interface {
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) (data []byte, err error)
	Del(ctx context.Context, key string) error
}

type Loader[Data any] func(ctx context.Context) (*Data, error)

type Config struct {
	Driver Driver
	Scene  string
	// seconds, 0 keeps entries until deleted
	TTL        uint
	Serializer serializer.Serializer
}

// Cache stores one Data type under "scene:key", or "key" without a scene.
type Cache[Data any] struct {
	driver     Driver
	scene      string
	ttl        time.Duration
	serializer serializer.Serializer
	loads      *singleflight.Group
}

func Define[Data any](c Config) *Cache[Data] {
	if c.Serializer == nil {
		c.Serializer = serializer.NewGoJson()
	}
	return &Cache[Data]{
		driver:     c.Driver,
		scene:      c.Scene,
		ttl:        time.Duration(c.TTL) * time.Second,
		serializer: c.Serializer,
		loads:      new(singleflight.Group),
	}
}

// Key returns the driver key for key, or "" when key cannot be converted.
func (c *Cache[Data]) Key(key any) string {
	return util.MakeSceneKey(c.scene, key)
}

func (c *Cache[Data]) Set(ctx context.Context, key any, data *Data) error {
	newKey := c.Key(key)
	if newKey == "" {
		return ErrKeyType
	}
	return c.set(ctx, newKey, data)
}

func (c *Cache[Data]) Get(ctx context.Context, key any) (*Data, error) {
	newKey := c.Key(key)
	if newKey == "" {
		return nil, ErrKeyType
	}
	return c.get(ctx, newKey)
}

// GetOrSet returns the cached value or stores what load returns. Concurrent
// misses on one key share a single load. A nil result is not cached.
func (c *Cache[Data]) GetOrSet(ctx context.Context, key any, load Loader[Data]) (*Data, error) {
	newKey := c.Key(key)
	if newKey == "" {
		return nil, ErrKeyType
	}

	data, err := c.get(ctx, newKey)
	if !errors.Is(err, ErrMiss) {
		return data, err
	}

	// the shared load outlives any single caller's cancellation
	shared := context.WithoutCancel(ctx)
	v, err, _ := c.loads.Do(newKey, func() (any, error) {
		return c.load(shared, newKey, load)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Data), nil
}

// Refresh runs load and overwrites the cached value.
func (c *Cache[Data]) Refresh(ctx context.Context, key any, load Loader[Data]) (*Data, error) {
	newKey := c.Key(key)
	if newKey == "" {
		return nil, ErrKeyType
	}
	return c.load(ctx, newKey, load)
}

func (c *Cache[Data]) Del(ctx context.Context, key any) error {
	newKey := c.Key(key)
	if newKey == "" {
		return ErrKeyType
	}
	return c.driver.Del(ctx, newKey)
}

func (c *Cache[Data]) load(ctx context.Context, newKey string, load Loader[Data]) (*Data, error) {
	data, err := load(ctx)
	if err != nil || data == nil {
		return data, err
	}
	return data, c.set(ctx, newKey, data)
}

func (c *Cache[Data]) set(ctx context.Context, newKey string, data *Data) error {
	raw, err := c.serializer.Encode(data)
	if err != nil {
		return err
	}
	return c.driver.Set(ctx, newKey, raw, c.ttl)
}

func (c *Cache[Data]) get(ctx context.Context, newKey string) (*Data, error) {
	raw, err := c.driver.Get(ctx, newKey)
	if err != nil {
		return nil, err
	}
	data := new(Data)
	if err = c.serializer.Decode(raw, data); err != nil {
		return nil, err
	}
	return data, nil
}
