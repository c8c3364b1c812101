package lock

import (
	"context"
	"time"
)

const DefaultInterval = time.Second

//go:generate mockgen -destination=mocks/driver.go -package=lockmocks -source=execute.go

// Driver provides the atomic primitives. Only the holder whose value matches
// may release or extend.
type Driver interface {
	LockTake(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	LockRelease(ctx context.Context, key, value string) (bool, error)
	LockExtend(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

type Handler func(ctx context.Context) error

// Acquire takes the lock now, then again on every interval tick until it
// succeeds, timeout passes or ctx is done. timeout <= 0 waits on ctx alone.
// Running out of time is not an error.
func Acquire(ctx context.Context, d Driver, key, value string, lease, timeout, interval time.Duration) (bool, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ok, err := d.LockTake(ctx, key, value, lease)
	if err != nil || ok {
		return ok, err
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline:
			return false, nil
		case <-ticker.C:
			ok, err = d.LockTake(ctx, key, value, lease)
			if err != nil || ok {
				return ok, err
			}
		}
	}
}

// Execute makes one attempt. When the lock is taken fn runs and the lock is
// released afterwards, even if fn fails or panics.
func Execute(ctx context.Context, d Driver, key, value string, lease time.Duration, fn Handler) (bool, error) {
	ok, err := d.LockTake(ctx, key, value, lease)
	if err != nil || !ok {
		return false, err
	}
	return true, run(ctx, d, key, value, fn)
}

// ExecuteWait is Execute with polling acquisition, see Acquire.
func ExecuteWait(ctx context.Context, d Driver, key, value string, lease, timeout, interval time.Duration, fn Handler) (bool, error) {
	ok, err := Acquire(ctx, d, key, value, lease, timeout, interval)
	if err != nil || !ok {
		return false, err
	}
	return true, run(ctx, d, key, value, fn)
}

func ExecuteValue[T any](ctx context.Context, d Driver, key, value string, lease time.Duration, fn func(ctx context.Context) (T, error)) (result T, ok bool, err error) {
	ok, err = Execute(ctx, d, key, value, lease, func(ctx context.Context) (err error) {
		result, err = fn(ctx)
		return
	})
	return
}

func ExecuteWaitValue[T any](ctx context.Context, d Driver, key, value string, lease, timeout, interval time.Duration, fn func(ctx context.Context) (T, error)) (result T, ok bool, err error) {
	ok, err = ExecuteWait(ctx, d, key, value, lease, timeout, interval, func(ctx context.Context) (err error) {
		result, err = fn(ctx)
		return
	})
	return
}

// run releases with a context that survives cancellation of ctx. A release
// error is reported only when fn succeeded.
func run(ctx context.Context, d Driver, key, value string, fn Handler) (err error) {
	defer func() {
		_, releaseErr := d.LockRelease(context.WithoutCancel(ctx), key, value)
		if err == nil {
			err = releaseErr
		}
	}()
	return fn(ctx)
}
