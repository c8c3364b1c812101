package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/samber/lo"

	"github.com/arklib/redix/serializer"
)

var (
	ErrNoDriver = errors.New("queue name and driver are required")
	ErrNoTask   = errors.New("queue task undefined")
)

type (
	ConsumeTaskHandler func(ctx context.Context, rawMessage []byte) error

	// Driver delivers every message to each consumer group once. Consume
	// blocks until ctx is done; messages whose handler failed are not acked.
	Driver interface {
		Produce(ctx context.Context, topic string, rawMessage []byte) error
		Consume(ctx context.Context, topic, group string, handler ConsumeTaskHandler) error
	}

	CmdTask struct {
		Name string
		Run  func(ctx context.Context) error
	}

	// Message is the envelope put on the topic. Task is set on retries so only
	// the failing task sees them again.
	Message struct {
		Task       string `json:"task,omitempty" msgpack:"task,omitempty"`
		Data       any    `json:"data" msgpack:"data"`
		RetryCount uint   `json:"retryCount,omitempty" msgpack:"retryCount,omitempty"`
		Error      string `json:"error,omitempty" msgpack:"error,omitempty"`
	}

	TaskConfig struct {
		// 0 never gives up
		MaxRetry uint
		// topic that receives messages past MaxRetry, "<queue>:dead" when empty
		DeadTopic string
	}
	TaskHandler[Data any] func(ctx context.Context, data *Data) error
	Task[Data any]        struct {
		Name      string
		Handler   TaskHandler[Data]
		MaxRetry  uint
		DeadTopic string
	}

	Config struct {
		Name       string
		Driver     Driver
		Serializer serializer.Serializer
		Logger     hlog.FullLogger
	}

	Queue[Data any] struct {
		Name       string
		Driver     Driver
		Tasks      map[string]*Task[Data]
		Serializer serializer.Serializer
		logger     hlog.FullLogger
	}
)

func Define[Data any](c Config) (*Queue[Data], error) {
	if c.Name == "" || c.Driver == nil {
		return nil, ErrNoDriver
	}
	if c.Serializer == nil {
		c.Serializer = serializer.NewGoJson()
	}
	if c.Logger == nil {
		c.Logger = hlog.DefaultLogger()
	}

	return &Queue[Data]{
		Name:       c.Name,
		Driver:     c.Driver,
		Serializer: c.Serializer,
		Tasks:      make(map[string]*Task[Data]),
		logger:     c.Logger,
	}, nil
}

func (q *Queue[Data]) Send(ctx context.Context, data *Data) error {
	rawMessage, err := q.Serializer.Encode(&Message{Data: data})
	if err != nil {
		return err
	}
	return q.Driver.Produce(ctx, q.Name, rawMessage)
}

// AddTask registers a consumer group. Each task receives every message.
func (q *Queue[Data]) AddTask(name string, handler TaskHandler[Data], c TaskConfig) *Queue[Data] {
	if c.DeadTopic == "" {
		c.DeadTopic = q.Name + ":dead"
	}

	q.Tasks[name] = &Task[Data]{
		Name:      name,
		Handler:   handler,
		MaxRetry:  c.MaxRetry,
		DeadTopic: c.DeadTopic,
	}
	return q
}

func (q *Queue[Data]) TaskNames() []string {
	return lo.Keys(q.Tasks)
}

// RunTask consumes the topic as the named task until ctx is done.
func (q *Queue[Data]) RunTask(ctx context.Context, name string) error {
	task, ok := q.Tasks[name]
	if !ok {
		return fmt.Errorf("%w: topic: %s, task: %s", ErrNoTask, q.Name, name)
	}

	err := q.Driver.Consume(ctx, q.Name, task.Name, func(ctx context.Context, rawMessage []byte) error {
		return q.handleTask(ctx, task, rawMessage)
	})
	if err != nil {
		return fmt.Errorf("[queue.task] topic: %s, task: %s, error: %w", q.Name, name, err)
	}
	return nil
}

func (q *Queue[Data]) handleTask(ctx context.Context, task *Task[Data], rawMessage []byte) error {
	data := new(Data)
	message := &Message{Data: data}

	if err := q.Serializer.Decode(rawMessage, message); err != nil {
		// unreadable messages go straight to the dead topic
		q.logger.CtxErrorf(ctx, "[queue.task] topic: %s, task: %s, decode error: %s", q.Name, task.Name, err)
		return q.Driver.Produce(ctx, task.DeadTopic, rawMessage)
	}

	// retry addressed to another task
	if message.Task != "" && message.Task != task.Name {
		return nil
	}

	if err := task.Handler(ctx, data); err != nil {
		return q.handleTaskError(ctx, task, message, err)
	}
	return nil
}

// handleTaskError re-sends the message addressed to task, or to the dead
// topic once MaxRetry is used up. A nil return acks the original.
func (q *Queue[Data]) handleTaskError(ctx context.Context, task *Task[Data], message *Message, taskErr error) error {
	q.logger.CtxWarnf(ctx, "[queue.task] topic: %s, task: %s, retry: %d, error: %s",
		q.Name, task.Name, message.RetryCount, taskErr)

	message.Task = task.Name
	message.Error = taskErr.Error()
	topic := q.Name
	if task.MaxRetry > 0 && message.RetryCount >= task.MaxRetry {
		topic = task.DeadTopic
	} else {
		message.RetryCount++
	}

	rawMessage, err := q.Serializer.Encode(message)
	if err != nil {
		return err
	}
	return q.Driver.Produce(ctx, topic, rawMessage)
}

func (q *Queue[Data]) GetCmdTasks() []*CmdTask {
	var cmdTasks []*CmdTask
	for _, task := range q.Tasks {
		task := task
		cmdTasks = append(cmdTasks, &CmdTask{
			Name: fmt.Sprintf("%s:%s", q.Name, task.Name),
			Run: func(ctx context.Context) error {
				return q.RunTask(ctx, task.Name)
			},
		})
	}
	return cmdTasks
}
