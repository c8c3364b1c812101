package redix_test

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arklib/redix"
)

func (s *ClientSuite) TestListPushPop() {
	n, err := s.client.ListRightPush(s.ctx, "l", "b", "c")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	_, err = s.client.ListLeftPush(s.ctx, "l", "a")
	s.Require().NoError(err)

	items, err := s.client.ListRange(s.ctx, "l", 0, -1)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, items)

	n, err = s.client.ListLeftPushX(s.ctx, "missing", "x")
	s.Require().NoError(err)
	s.Zero(n)

	v, err := s.client.ListIndex(s.ctx, "l", 1)
	s.Require().NoError(err)
	s.Equal("b", v)

	s.Require().NoError(s.client.ListSet(s.ctx, "l", 1, "B"))
	_, err = s.client.ListInsertAfter(s.ctx, "l", "B", "b2")
	s.Require().NoError(err)

	n, err = s.client.ListRemove(s.ctx, "l", 0, "b2")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	v, err = s.client.ListLeftPop(s.ctx, "l")
	s.Require().NoError(err)
	s.Equal("a", v)

	v, err = s.client.ListRightPop(s.ctx, "l")
	s.Require().NoError(err)
	s.Equal("c", v)

	s.Require().NoError(s.client.ListTrim(s.ctx, "l", 1, -1))
	n, err = s.client.ListLen(s.ctx, "l")
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *ClientSuite) TestListMoveBetweenKeys() {
	_, err := s.client.ListRightPush(s.ctx, "src", "1", "2")
	s.Require().NoError(err)

	v, err := s.client.ListRightPopLeftPush(s.ctx, "src", "dst")
	s.Require().NoError(err)
	s.Equal("2", v)

	v, err = s.client.ListMove(s.ctx, "src", "dst", "LEFT", "RIGHT")
	s.Require().NoError(err)
	s.Equal("1", v)

	items, err := s.client.ListRange(s.ctx, "dst", 0, -1)
	s.Require().NoError(err)
	s.Equal([]string{"2", "1"}, items)

	v, err = s.client.ListBlockRightPopLeftPush(s.ctx, "dst", "src", time.Second)
	s.Require().NoError(err)
	s.Equal("1", v)
}

func (s *ClientSuite) TestListBlockPopTrimsKey() {
	_, err := s.client.ListRightPush(s.ctx, "jobs", "j1")
	s.Require().NoError(err)

	res, err := s.client.ListBlockLeftPop(s.ctx, time.Second, "empty", "jobs")
	s.Require().NoError(err)
	s.Equal([]string{"jobs", "j1"}, res)

	_, err = s.client.ListBlockRightPop(s.ctx, time.Second, "jobs")
	s.ErrorIs(err, redis.Nil)
}

func (s *ClientSuite) TestQueueIsFIFO() {
	n, err := s.client.QueuePush(s.ctx, "q", "first", "second")
	s.Require().NoError(err)
	s.Equal(int64(2), n)
	_, err = s.client.QueuePush(s.ctx, "q", map[string]int{"third": 3})
	s.Require().NoError(err)

	v, ok, err := s.client.QueuePeek(s.ctx, "q")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("first", v)

	for _, want := range []string{"first", "second"} {
		v, ok, err = s.client.QueuePop(s.ctx, "q")
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(want, v)
	}

	third, ok, err := redix.QueuePopAs[map[string]int](s.ctx, s.client, "q")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(map[string]int{"third": 3}, third)

	_, ok, err = s.client.QueuePop(s.ctx, "q")
	s.Require().NoError(err)
	s.False(ok)

	_, ok, err = s.client.QueuePeek(s.ctx, "q")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ClientSuite) TestQueueBlockPopAndClear() {
	go func() {
		time.Sleep(20 * time.Millisecond)
		_, _ = s.client.QueuePush(s.ctx, "q", "late")
	}()

	v, ok, err := s.client.QueueBlockPop(s.ctx, "q", time.Second)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("late", v)

	_, ok, err = s.client.QueueBlockPop(s.ctx, "q", time.Second)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.client.QueuePush(s.ctx, "q", 1, 2, 3)
	s.Require().NoError(err)
	s.Require().NoError(s.client.QueueClear(s.ctx, "q"))
	n, err := s.client.QueueLen(s.ctx, "q")
	s.Require().NoError(err)
	s.Zero(n)
}
