package lock

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"github.com/arklib/redix/util"
)

var ErrKeyType = errors.New("key type error")
var ErrIsLocked = errors.New("is locked")
var ErrNotHeld = errors.New("lock not held")

type (
	Config struct {
		Driver Driver
		Scene  string
		// lease in seconds
		TTL    uint
		Retry  time.Duration
		Logger hlog.FullLogger
	}

	Payload struct {
		driver Driver
		key    string
		token  string
		ctx    context.Context
	}

	// Lock hands out scene scoped locks with random tokens.
	Lock struct {
		driver Driver
		scene  string
		ttl    time.Duration
		retry  time.Duration
		logger hlog.FullLogger
	}
)

func Define(c Config) *Lock {
	if c.TTL == 0 {
		c.TTL = 30
	}
	if c.Retry <= 0 {
		c.Retry = DefaultInterval
	}
	if c.Logger == nil {
		c.Logger = hlog.DefaultLogger()
	}

	return &Lock{
		driver: c.Driver,
		scene:  c.Scene,
		ttl:    time.Duration(c.TTL) * time.Second,
		retry:  c.Retry,
		logger: c.Logger,
	}
}

// TryLock makes one attempt and returns ErrIsLocked when another holder has
// the key.
func (l *Lock) TryLock(ctx context.Context, key any) (*Payload, error) {
	return l.lock(ctx, key, func(newKey, token string) (bool, error) {
		return l.driver.LockTake(ctx, newKey, token, l.ttl)
	})
}

// WaitLock polls every Retry until the lock is taken, timeout passes
// (ErrIsLocked) or ctx is done.
func (l *Lock) WaitLock(ctx context.Context, key any, timeout time.Duration) (*Payload, error) {
	return l.lock(ctx, key, func(newKey, token string) (bool, error) {
		l.logger.CtxDebugf(ctx, "[lock.wait] key: %s, timeout: %s", newKey, timeout)
		return Acquire(ctx, l.driver, newKey, token, l.ttl, timeout, l.retry)
	})
}

// Run holds the lock for the duration of fn.
func (l *Lock) Run(ctx context.Context, key any, fn Handler) error {
	payload, err := l.TryLock(ctx, key)
	if err != nil {
		return err
	}
	return payload.run(fn)
}

func (l *Lock) RunWait(ctx context.Context, key any, timeout time.Duration, fn Handler) error {
	payload, err := l.WaitLock(ctx, key, timeout)
	if err != nil {
		return err
	}
	return payload.run(fn)
}

func (l *Lock) lock(ctx context.Context, key any, take func(newKey, token string) (bool, error)) (payload *Payload, err error) {
	newKey := util.MakeSceneKey(l.scene, key)
	if newKey == "" {
		err = ErrKeyType
		return
	}

	token := uuid.NewString()
	locked, err := take(newKey, token)
	if err != nil {
		return
	}
	if !locked {
		err = ErrIsLocked
		return
	}

	payload = &Payload{
		ctx:    ctx,
		driver: l.driver,
		key:    newKey,
		token:  token,
	}
	return
}

func (p *Payload) Key() string {
	return p.key
}

func (p *Payload) Token() string {
	return p.token
}

// Unlock returns ErrNotHeld when the lease ran out or another holder took
// the key.
func (p *Payload) Unlock() error {
	ok, err := p.driver.LockRelease(context.WithoutCancel(p.ctx), p.key, p.token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotHeld
	}
	return nil
}

func (p *Payload) Extend(ttl time.Duration) error {
	ok, err := p.driver.LockExtend(p.ctx, p.key, p.token, ttl)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotHeld
	}
	return nil
}

func (p *Payload) run(fn Handler) (err error) {
	defer func() {
		unlockErr := p.Unlock()
		if err == nil {
			err = unlockErr
		}
	}()
	return fn(p.ctx)
}
