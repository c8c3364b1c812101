// Package event publishes typed events on Redis channels and runs a handler
// chain for each one received.
package event

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/arklib/redix"
)

type (
	Payload[Data any] struct {
		Ctx     context.Context
		Channel string
		Data    *Data
		Next    func() error
	}

	Handler[Data any] func(Payload[Data]) error

	Event[Data any] struct {
		client   *redix.Client
		channel  string
		handlers []Handler[Data]
	}
)

func Define[Data any](client *redix.Client, channel string) *Event[Data] {
	return &Event[Data]{client: client, channel: channel}
}

func (e *Event[Data]) Channel() string {
	return e.channel
}

// Use appends handlers. A handler runs the rest of the chain by calling Next.
func (e *Event[Data]) Use(handler ...Handler[Data]) *Event[Data] {
	e.handlers = append(e.handlers, handler...)
	return e
}

// Publish encodes data with the client serializer and returns the number of
// subscribers that received it.
func (e *Event[Data]) Publish(ctx context.Context, data *Data) (int64, error) {
	raw, err := e.client.Serializer().Encode(data)
	if err != nil {
		return 0, err
	}
	return e.client.Publish(ctx, e.channel, raw)
}

// Dispatch runs the handler chain for data without going through Redis.
func (e *Event[Data]) Dispatch(ctx context.Context, data *Data) error {
	p := Payload[Data]{
		Ctx:     ctx,
		Channel: e.channel,
		Data:    data,
	}

	index := 0
	p.Next = func() error {
		if index == len(e.handlers) {
			return nil
		}
		handler := e.handlers[index]
		index++
		return handler(p)
	}
	return p.Next()
}

// Listen subscribes and dispatches every event until ctx is done. Decode and
// handler failures are logged and do not end the subscription.
func (e *Event[Data]) Listen(ctx context.Context) error {
	logger := e.client.Logger()
	err := e.client.SubscribeFunc(ctx, func(ctx context.Context, msg *redis.Message) error {
		data := new(Data)
		if err := e.client.Serializer().Decode([]byte(msg.Payload), data); err != nil {
			logger.CtxErrorf(ctx, "[event] channel: %s, decode error: %s", msg.Channel, err)
			return nil
		}
		if err := e.Dispatch(ctx, data); err != nil {
			logger.CtxErrorf(ctx, "[event] channel: %s, error: %s", msg.Channel, err)
		}
		return nil
	}, e.channel)

	if ctx.Err() != nil {
		return nil
	}
	return err
}
