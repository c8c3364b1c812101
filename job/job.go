package job

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/arklib/redix/serializer"
)

var ErrNoDriver = errors.New("job driver is required")

type (
	PushCallback func(ctx context.Context, id string, data []byte) error

	// Driver pops nil data when the queue is empty.
	Driver interface {
		Pop(ctx context.Context, queue string) (rawData []byte, err error)
		Push(ctx context.Context, queue string, rawData []byte) error
	}

	RetryDriver interface {
		Add(ctx context.Context, queue string, rawData []byte, retryTime uint, errMsg string) error
		Run(ctx context.Context, queue string, push PushCallback) error
	}

	Config struct {
		Driver      Driver
		RetryDriver RetryDriver
		Serializer  serializer.Serializer
		Logger      hlog.FullLogger

		Queue string
		// seconds before a failed job is pushed again
		RetryTime uint
		// idle wait between empty pops
		Idle time.Duration
	}

	Payload[Data any] struct {
		Ctx  context.Context
		Data *Data
	}

	Handler[Data any] func(Payload[Data]) error

	Job[Data any] struct {
		driver      Driver
		retryDriver RetryDriver
		serializer  serializer.Serializer
		logger      hlog.FullLogger

		queue     string
		retryTime uint
		idle      time.Duration
		handlers  []Handler[Data]
	}

	Cmd struct {
		Name  string
		Run   func(ctx context.Context) error
		Retry func(ctx context.Context) error
	}
)

func Define[Data any](c Config) *Job[Data] {
	if c.Serializer == nil {
		c.Serializer = serializer.NewGoJson()
	}
	if c.Logger == nil {
		c.Logger = hlog.DefaultLogger()
	}
	if c.RetryTime == 0 {
		c.RetryTime = 30
	}
	if c.Idle <= 0 {
		c.Idle = time.Second
	}

	return &Job[Data]{
		driver:      c.Driver,
		retryDriver: c.RetryDriver,
		serializer:  c.Serializer,
		logger:      c.Logger,
		queue:       c.Queue,
		retryTime:   c.RetryTime,
		idle:        c.Idle,
	}
}

func (t *Job[Data]) Name() string {
	return t.queue
}

func (t *Job[Data]) GetCmd() *Cmd {
	return &Cmd{
		Name:  t.queue,
		Run:   t.Run,
		Retry: t.Retry,
	}
}

// Use appends a handler. Handlers run in order and stop at the first error.
func (t *Job[Data]) Use(handler Handler[Data]) *Job[Data] {
	t.handlers = append(t.handlers, handler)
	return t
}

func (t *Job[Data]) Dispatch(ctx context.Context, data *Data) error {
	if t.driver == nil {
		return ErrNoDriver
	}
	rawData, err := t.serializer.Encode(data)
	if err != nil {
		return err
	}
	return t.driver.Push(ctx, t.queue, rawData)
}

// RunOnce pops and handles one job. It reports false when the queue was empty.
// Handler failures go to the retry driver and are not returned.
func (t *Job[Data]) RunOnce(ctx context.Context) (bool, error) {
	if t.driver == nil {
		return false, ErrNoDriver
	}
	rawData, err := t.driver.Pop(ctx, t.queue)
	if err != nil {
		return false, err
	}
	if len(rawData) == 0 {
		return false, nil
	}

	data := new(Data)
	if err = t.serializer.Decode(rawData, data); err != nil {
		t.fail(ctx, rawData, err)
		return true, nil
	}

	payload := Payload[Data]{Ctx: ctx, Data: data}
	for _, handler := range t.handlers {
		if err = handler(payload); err != nil {
			t.fail(ctx, rawData, err)
			break
		}
	}
	return true, nil
}

// Run handles jobs until ctx is done.
func (t *Job[Data]) Run(ctx context.Context) error {
	for {
		handled, err := t.RunOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			t.logger.CtxErrorf(ctx, "[job] name: %s, error: %s", t.queue, err)
		}
		if handled {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(t.idle):
		}
	}
}

// Retry pushes due retries back onto the queue.
func (t *Job[Data]) Retry(ctx context.Context) error {
	if t.retryDriver == nil {
		return nil
	}
	push := func(ctx context.Context, id string, data []byte) error {
		t.logger.CtxInfof(ctx, "[job.retry] id: %s, name: %s", id, t.queue)
		return t.driver.Push(ctx, t.queue, data)
	}
	return t.retryDriver.Run(ctx, t.queue, push)
}

func (t *Job[Data]) fail(ctx context.Context, rawData []byte, err error) {
	t.logger.CtxWarnf(ctx, "[job] name: %s, error: %s", t.queue, err)
	if t.retryDriver == nil {
		return
	}
	if err = t.retryDriver.Add(ctx, t.queue, rawData, t.retryTime, err.Error()); err != nil {
		t.logger.CtxErrorf(ctx, "[job.retry] name: %s, add error: %s", t.queue, err)
	}
}
