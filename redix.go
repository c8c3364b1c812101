package redix

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/arklib/redix/errx"
	"github.com/arklib/redix/serializer"
	"github.com/arklib/redix/validator"
)

const (
	DefaultAddr      = "127.0.0.1:6379"
	DefaultLockRetry = time.Second
)

type Options struct {
	Addrs      []string `config:"addrs" vd:"required,min=1,dive,required,redis_addr" label:"addrs"`
	MasterName string   `config:"masterName"`
	Username   string   `config:"username"`
	Password   string   `config:"password"`
	DB         int      `config:"db" vd:"gte=0,lte=15" label:"db"`

	PoolSize     int           `config:"poolSize" vd:"gte=0"`
	MinIdleConns int           `config:"minIdleConns" vd:"gte=0"`
	MaxRetries   int           `config:"maxRetries"`
	DialTimeout  time.Duration `config:"dialTimeout"`
	ReadTimeout  time.Duration `config:"readTimeout"`
	WriteTimeout time.Duration `config:"writeTimeout"`

	// prepended to every key the facade sends, stripped from keys it returns
	KeyPrefix string `config:"keyPrefix"`
	// json | sonic | msgpack, used when Serializer is nil
	Codec     string        `config:"codec" default:"json"`
	LockRetry time.Duration `config:"lockRetry"`

	Serializer serializer.Serializer `config:"-"`
	Logger     hlog.FullLogger       `config:"-"`
}

var optionsValidator = sync.OnceValue(func() *validator.Validator {
	return validator.New("en")
})

// Client forwards Redis commands to the wrapped go-redis client.
type Client struct {
	rdb        redis.UniversalClient
	opts       Options
	prefix     string
	serializer serializer.Serializer
	logger     hlog.FullLogger
}

// New validates opts and builds a universal client: failover when MasterName
// is set, cluster for more than one address, single node otherwise.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{Addrs: []string{DefaultAddr}}
	}
	if err := optionsValidator().Test(opts, ""); err != nil {
		return nil, err
	}

	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        opts.Addrs,
		MasterName:   opts.MasterName,
		Username:     opts.Username,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})
	c := NewWithClient(rdb, opts)
	c.logger.Debugf("[redix] client created, addrs: %s, db: %d", strings.Join(opts.Addrs, ","), opts.DB)
	return c, nil
}

// Connect is New followed by a PING. A failed PING is returned as an
// errx.AppError coded by errx.NetCode, wrapping the go-redis error.
func Connect(ctx context.Context, opts *Options) (*Client, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err = c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, errx.Wrapf(err, errx.NetCode(err), "connect %s", strings.Join(c.opts.Addrs, ","))
	}
	return c, nil
}

// NewWithClient wraps an existing go-redis client. Connection fields of opts
// are ignored.
func NewWithClient(rdb redis.UniversalClient, opts *Options) *Client {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.LockRetry <= 0 {
		o.LockRetry = DefaultLockRetry
	}
	if o.Serializer == nil {
		o.Serializer = serializer.ByName(o.Codec)
	}
	if o.Logger == nil {
		o.Logger = hlog.DefaultLogger()
	}

	return &Client{
		rdb:        rdb,
		opts:       o,
		prefix:     o.KeyPrefix,
		serializer: o.Serializer,
		logger:     o.Logger,
	}
}

func (c *Client) Raw() redis.UniversalClient {
	return c.rdb
}

func (c *Client) Options() Options {
	return c.opts
}

func (c *Client) Serializer() serializer.Serializer {
	return c.serializer
}

func (c *Client) Logger() hlog.FullLogger {
	return c.logger
}

func (c *Client) AddHook(hook redis.Hook) {
	c.rdb.AddHook(hook)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) key(key string) string {
	return c.prefix + key
}

func (c *Client) keys(keys []string) []string {
	if c.prefix == "" {
		return keys
	}
	return lo.Map(keys, func(key string, _ int) string {
		return c.prefix + key
	})
}

func (c *Client) trim(key string) string {
	return strings.TrimPrefix(key, c.prefix)
}

func (c *Client) trimAll(keys []string) []string {
	if c.prefix == "" {
		return keys
	}
	return lo.Map(keys, func(key string, _ int) string {
		return c.trim(key)
	})
}

// streams prefixes the stream half of an XREAD style "s1 s2 id1 id2" list.
func (c *Client) streams(streams []string) []string {
	if c.prefix == "" {
		return streams
	}
	out := make([]string, len(streams))
	copy(out, streams)
	for i := 0; i < len(out)/2; i++ {
		out[i] = c.prefix + out[i]
	}
	return out
}
