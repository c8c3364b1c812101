// Package metrics exports go-redis command counts and latency to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Hook implements redis.Hook and prometheus.Collector. redis.Nil counts as ok.
type Hook struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	dials    *prometheus.CounterVec
}

var (
	_ redis.Hook           = (*Hook)(nil)
	_ prometheus.Collector = (*Hook)(nil)
)

// NewHook registers the collectors with reg, or the default registerer when
// reg is nil.
func NewHook(namespace string, reg prometheus.Registerer) (*Hook, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	h := &Hook{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "commands_total",
			Help:      "Redis commands processed, by command and status.",
		}, []string{"cmd", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "command_duration_seconds",
			Help:      "Redis command latency.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"cmd"}),
		dials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "dials_total",
			Help:      "Connections dialed, by status.",
		}, []string{"status"}),
	}

	if err := reg.Register(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hook) Describe(ch chan<- *prometheus.Desc) {
	h.commands.Describe(ch)
	h.duration.Describe(ch)
	h.dials.Describe(ch)
}

func (h *Hook) Collect(ch chan<- prometheus.Metric) {
	h.commands.Collect(ch)
	h.duration.Collect(ch)
	h.dials.Collect(ch)
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.dials.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.observe(cmd, time.Since(start))
		return err
	}
}

// ProcessPipelineHook counts each command of the pipeline; the pipeline time
// is spread evenly over them.
func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if len(cmds) > 0 {
			each := time.Since(start) / time.Duration(len(cmds))
			for _, cmd := range cmds {
				h.observe(cmd, each)
			}
		}
		return err
	}
}

func (h *Hook) observe(cmd redis.Cmder, d time.Duration) {
	name := cmd.Name()
	h.commands.WithLabelValues(name, status(cmd.Err())).Inc()
	h.duration.WithLabelValues(name).Observe(d.Seconds())
}

func status(err error) string {
	if err == nil || errors.Is(err, redis.Nil) {
		return StatusOK
	}
	return StatusError
}
