package config

import (
	"log"

	"github.com/gookit/config/v2"
	"github.com/gookit/config/v2/json"
	"github.com/gookit/config/v2/toml"
	"github.com/gookit/config/v2/yaml"

	"github.com/arklib/redix"
	"github.com/arklib/redix/errx"
	"github.com/arklib/redix/logger"
)

const (
	RedisKey  = "redis"
	LoggerKey = "logger"
)

type Config struct {
	*config.Config
}

func MustLoad(paths ...string) *Config {
	c, err := Load(paths...)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Load reads json, toml or yaml files. ${VAR} values are expanded from the
// environment and `default` tags fill unset fields on bind.
func Load(paths ...string) (*Config, error) {
	c := New()
	if err := c.LoadFiles(paths...); err != nil {
		return nil, errx.Wrapf(err, errx.CodeInvalid, "load config")
	}
	return c, nil
}

func New() *Config {
	newConfig := config.New("redix").WithOptions(
		config.WithTagName("config"),
		config.ParseEnv,
		config.ParseTime,
		config.ParseDefault,
	)

	c := &Config{newConfig}
	c.AddDriver(json.Driver)
	c.AddDriver(toml.Driver)
	c.AddDriver(yaml.Driver)
	return c
}

// Redis binds the section at key ("redis" when empty) into client options.
func (c *Config) Redis(key string) (*redix.Options, error) {
	if key == "" {
		key = RedisKey
	}
	opts := new(redix.Options)
	if err := c.BindStruct(key, opts); err != nil {
		return nil, errx.Wrapf(err, errx.CodeInvalid, "bind %s config", key)
	}
	if len(opts.Addrs) == 0 {
		opts.Addrs = []string{redix.DefaultAddr}
	}
	return opts, nil
}

func (c *Config) Logger(key string) (*logger.Config, error) {
	if key == "" {
		key = LoggerKey
	}
	lc := new(logger.Config)
	if !c.Exists(key) {
		return lc, nil
	}
	if err := c.BindStruct(key, lc); err != nil {
		return nil, errx.Wrapf(err, errx.CodeInvalid, "bind %s config", key)
	}
	return lc, nil
}
