package job

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/arklib/redix"
)

// RedisDriver keeps jobs in a list through the facade queue helpers.
type RedisDriver struct {
	client *redix.Client
}

func NewRedisDriver(client *redix.Client) *RedisDriver {
	return &RedisDriver{client: client}
}

func (r *RedisDriver) Push(ctx context.Context, queue string, data []byte) error {
	_, err := r.client.QueuePush(ctx, queue, data)
	return err
}

func (r *RedisDriver) Pop(ctx context.Context, queue string) ([]byte, error) {
	value, ok, err := r.client.QueuePop(ctx, queue)
	if err != nil || !ok {
		return nil, err
	}
	return []byte(value), nil
}

// RetryRecord is one failed job waiting in the retry set.
type RetryRecord struct {
	ID    string `json:"id" msgpack:"id"`
	Data  string `json:"data" msgpack:"data"`
	Error string `json:"error" msgpack:"error"`
}

// RedisRetryDriver keeps failed jobs in a sorted set scored by the unix time
// of their next attempt.
type RedisRetryDriver struct {
	client *redix.Client
	batch  int64
}

func NewRedisRetryDriver(client *redix.Client) *RedisRetryDriver {
	return &RedisRetryDriver{client: client, batch: 100}
}

func RetryKey(queue string) string {
	return "job:retry:" + queue
}

// DeadKey holds retry records that could not be decoded.
func DeadKey(queue string) string {
	return RetryKey(queue) + ":dead"
}

func (r *RedisRetryDriver) Add(ctx context.Context, queue string, data []byte, retryTime uint, errMsg string) error {
	record := RetryRecord{
		ID:    uuid.NewString(),
		Data:  string(data),
		Error: errMsg,
	}
	member, err := r.client.Serializer().Encode(record)
	if err != nil {
		return err
	}

	at := time.Now().Add(time.Duration(retryTime) * time.Second).Unix()
	_, err = r.client.SortedSetAdd(ctx, RetryKey(queue), string(member), float64(at))
	return err
}

// Run pushes every due record. A record is pushed only by the runner that
// removed it, so concurrent runners never push it twice.
func (r *RedisRetryDriver) Run(ctx context.Context, queue string, push PushCallback) error {
	key := RetryKey(queue)
	for {
		members, err := r.client.SortedSetRangeByScore(ctx, key, &redis.ZRangeBy{
			Min:   "-inf",
			Max:   strconv.FormatInt(time.Now().Unix(), 10),
			Count: r.batch,
		})
		if err != nil || len(members) == 0 {
			return err
		}

		for _, member := range members {
			n, err := r.client.SortedSetRemove(ctx, key, member)
			if err != nil {
				return err
			}
			if n != 1 {
				continue
			}

			record := new(RetryRecord)
			if err = r.client.Serializer().Decode([]byte(member), record); err != nil {
				r.bury(ctx, queue, member, err)
				continue
			}
			if err = push(ctx, record.ID, []byte(record.Data)); err != nil {
				// put it back for the next run
				_, _ = r.client.SortedSetAdd(ctx, key, member, float64(time.Now().Unix()))
				return err
			}
		}
	}
}

// bury keeps an unreadable record on the dead list instead of dropping it.
func (r *RedisRetryDriver) bury(ctx context.Context, queue, member string, decodeErr error) {
	r.client.Logger().CtxErrorf(ctx, "[job.retry] name: %s, decode error: %s", queue, decodeErr)
	if _, err := r.client.ListLeftPush(ctx, DeadKey(queue), member); err != nil {
		r.client.Logger().CtxErrorf(ctx, "[job.retry] name: %s, bury error: %s", queue, err)
	}
}

// Pending lists records waiting for retry, due or not.
func (r *RedisRetryDriver) Pending(ctx context.Context, queue string) ([]RetryRecord, error) {
	members, err := r.client.SortedSetRange(ctx, RetryKey(queue), 0, -1)
	if err != nil {
		return nil, err
	}
	records := make([]RetryRecord, 0, len(members))
	for _, member := range members {
		var record RetryRecord
		if err = r.client.Serializer().Decode([]byte(member), &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
