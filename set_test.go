package redix_test

import (
	"github.com/redis/go-redis/v9"
)

func (s *ClientSuite) TestSetMembers() {
	n, err := s.client.SetAdd(s.ctx, "tags", "go", "redis", "go")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	ok, err := s.client.SetContains(s.ctx, "tags", "go")
	s.Require().NoError(err)
	s.True(ok)

	members, err := s.client.SetMembers(s.ctx, "tags")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"go", "redis"}, members)

	size, err := s.client.SetLen(s.ctx, "tags")
	s.Require().NoError(err)
	s.Equal(int64(2), size)

	moved, err := s.client.SetMove(s.ctx, "tags", "archived", "redis")
	s.Require().NoError(err)
	s.True(moved)
	s.True(s.mr.Exists("app:archived"))

	n, err = s.client.SetRemove(s.ctx, "tags", "go")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	_, err = s.client.SetPop(s.ctx, "tags")
	s.ErrorIs(err, redis.Nil)
}

func (s *ClientSuite) TestSetAlgebra() {
	_, err := s.client.SetAdd(s.ctx, "a", "1", "2", "3")
	s.Require().NoError(err)
	_, err = s.client.SetAdd(s.ctx, "b", "2", "3", "4")
	s.Require().NoError(err)

	union, err := s.client.SetUnion(s.ctx, "a", "b")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"1", "2", "3", "4"}, union)

	inter, err := s.client.SetIntersect(s.ctx, "a", "b")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"2", "3"}, inter)

	diff, err := s.client.SetDifference(s.ctx, "a", "b")
	s.Require().NoError(err)
	s.Equal([]string{"1"}, diff)

	n, err := s.client.SetIntersectStore(s.ctx, "both", "a", "b")
	s.Require().NoError(err)
	s.Equal(int64(2), n)
	s.True(s.mr.Exists("app:both"))

	n, err = s.client.SetUnionStore(s.ctx, "either", "a", "b")
	s.Require().NoError(err)
	s.Equal(int64(4), n)

	scanned, err := s.client.SetScan(s.ctx, "either", "*", 10)
	s.Require().NoError(err)
	s.Len(scanned, 4)
}
