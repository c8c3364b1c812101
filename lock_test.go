package redix_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/arklib/redix"
	"github.com/arklib/redix/internal/testutil"
)

func (s *ClientSuite) TestLockPrimitives() {
	ok, err := s.client.LockTake(s.ctx, "lock:report", "owner-a", time.Minute)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(time.Minute, s.mr.TTL("app:lock:report"))

	ok, err = s.client.LockTake(s.ctx, "lock:report", "owner-b", time.Minute)
	s.Require().NoError(err)
	s.False(ok)

	holder, ok, err := s.client.LockQuery(s.ctx, "lock:report")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("owner-a", holder)

	ok, err = s.client.LockExtend(s.ctx, "lock:report", "owner-b", time.Hour)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.client.LockExtend(s.ctx, "lock:report", "owner-a", time.Hour)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(time.Hour, s.mr.TTL("app:lock:report"))

	ok, err = s.client.LockRelease(s.ctx, "lock:report", "owner-b")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.client.LockRelease(s.ctx, "lock:report", "owner-a")
	s.Require().NoError(err)
	s.True(ok)

	_, ok, err = s.client.LockQuery(s.ctx, "lock:report")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ClientSuite) TestLockExpires() {
	ok, err := s.client.LockTake(s.ctx, "lock:x", "a", time.Second)
	s.Require().NoError(err)
	s.True(ok)

	s.mr.FastForward(2 * time.Second)
	ok, err = s.client.LockTake(s.ctx, "lock:x", "b", time.Second)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ClientSuite) TestLockExecute() {
	ran := false
	ok, err := s.client.LockExecute(s.ctx, "lock:job", "me", time.Minute, func(ctx context.Context) error {
		ran = true
		holder, held, err := s.client.LockQuery(ctx, "lock:job")
		s.NoError(err)
		s.True(held)
		s.Equal("me", holder)
		return nil
	})
	s.Require().NoError(err)
	s.True(ok)
	s.True(ran)
	s.False(s.mr.Exists("app:lock:job"))

	boom := errors.New("boom")
	ok, err = s.client.LockExecute(s.ctx, "lock:job", "me", time.Minute, func(ctx context.Context) error {
		return boom
	})
	s.True(ok)
	s.ErrorIs(err, boom)
	s.False(s.mr.Exists("app:lock:job"))

	_, err = s.client.LockTake(s.ctx, "lock:job", "other", time.Minute)
	s.Require().NoError(err)
	ok, err = s.client.LockExecute(s.ctx, "lock:job", "me", time.Minute, func(ctx context.Context) error {
		s.Fail("must not run while held")
		return nil
	})
	s.Require().NoError(err)
	s.False(ok)

	holder, _, err := s.client.LockQuery(s.ctx, "lock:job")
	s.Require().NoError(err)
	s.Equal("other", holder)
}

func (s *ClientSuite) TestLockExecuteWait() {
	client, mr := testutil.NewClient(s.T(), &redix.Options{LockRetry: 10 * time.Millisecond})

	_, err := client.LockTake(s.ctx, "lock:w", "other", time.Minute)
	s.Require().NoError(err)

	ok, err := client.LockExecuteWait(s.ctx, "lock:w", "me", time.Minute, 50*time.Millisecond, func(ctx context.Context) error {
		s.Fail("must not run while held")
		return nil
	})
	s.Require().NoError(err)
	s.False(ok)

	go func() {
		time.Sleep(30 * time.Millisecond)
		_, _ = client.LockRelease(context.Background(), "lock:w", "other")
	}()

	var runs atomic.Int32
	ok, err = client.LockExecuteWait(s.ctx, "lock:w", "me", time.Minute, time.Second, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(int32(1), runs.Load())
	s.False(mr.Exists("lock:w"))
}

func (s *ClientSuite) TestLockExecuteWaitCancelled() {
	_, err := s.client.LockTake(s.ctx, "lock:c", "other", time.Minute)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()
	ok, err := s.client.LockExecuteWait(ctx, "lock:c", "me", time.Minute, 0, func(ctx context.Context) error {
		return nil
	})
	s.False(ok)
	s.ErrorIs(err, context.DeadlineExceeded)
}
