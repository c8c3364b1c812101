package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/zerolog"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// empty writes to the console
	File string `config:"file"`
	// trace | debug | info | notice | warn | error | fatal
	Level string `config:"level" default:"error"`
	// 30 day
	MaxAge int `config:"maxAge" default:"30"`
	// 128 MB
	MaxSize    int `config:"maxSize" default:"128"`
	MaxBackups int `config:"maxBackups" default:"32"`
}

// Logger is an hlog.FullLogger backed by zerolog.
type Logger struct {
	*zerolog.Logger
	Writer io.Writer
}

// New logs to c.File through lumberjack with a buffered writer flushed every
// second, or to the console when File is empty.
func New(c *Config) *Logger {
	if c == nil {
		c = &Config{}
	}
	if c.File == "" {
		return NewConsole(c)
	}

	rotate := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
	}
	w := &zapcore.BufferedWriteSyncer{
		WS:            zapcore.AddSync(rotate),
		FlushInterval: time.Second,
	}
	return build(c.Level, w, time.DateTime)
}

func NewConsole(c *Config) *Logger {
	return NewWriter(c, zerolog.ConsoleWriter{Out: os.Stdout})
}

// NewWriter logs to w, mostly for tests.
func NewWriter(c *Config, w io.Writer) *Logger {
	level := ""
	if c != nil {
		level = c.Level
	}
	return build(level, w, time.Kitchen)
}

func build(level string, w io.Writer, timeFormat string) *Logger {
	l := zerolog.New(zerolog.WithFormattedTimestamp(timeFormat))
	l.SetOutput(w)
	l.SetLevel(GetLogLevel(level))
	return &Logger{Logger: l, Writer: w}
}

// Install makes l the hlog default and routes go-redis pool and reconnect
// messages to it.
func Install(l hlog.FullLogger) {
	hlog.SetLogger(l)
	redis.SetLogger(RedisLogger{Logger: l})
}

// Sync flushes the buffered file writer.
func (l *Logger) Sync() error {
	if s, ok := l.Writer.(zapcore.WriteSyncer); ok {
		return s.Sync()
	}
	return nil
}

func GetLogLevel(level string) hlog.Level {
	switch level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "info":
		return hlog.LevelInfo
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}

// RedisLogger adapts hlog to the go-redis internal logger. Messages are
// logged at warn level.
type RedisLogger struct {
	Logger hlog.FullLogger
}

func (r RedisLogger) Printf(ctx context.Context, format string, v ...any) {
	r.Logger.CtxWarnf(ctx, "[go-redis] "+format, v...)
}
