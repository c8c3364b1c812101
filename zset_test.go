package redix_test

import (
	"time"

	"github.com/redis/go-redis/v9"
)

func (s *ClientSuite) TestSortedSetScores() {
	added, err := s.client.SortedSetAdd(s.ctx, "board", "ada", 10)
	s.Require().NoError(err)
	s.True(added)

	added, err = s.client.SortedSetAdd(s.ctx, "board", "ada", 12)
	s.Require().NoError(err)
	s.False(added)

	n, err := s.client.SortedSetAddMany(s.ctx, "board", redis.Z{Score: 5, Member: "bob"}, redis.Z{Score: 20, Member: "cy"})
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	score, err := s.client.SortedSetScore(s.ctx, "board", "ada")
	s.Require().NoError(err)
	s.Equal(12.0, score)

	score, err = s.client.SortedSetIncrBy(s.ctx, "board", "bob", 10)
	s.Require().NoError(err)
	s.Equal(15.0, score)

	rank, err := s.client.SortedSetRank(s.ctx, "board", "cy")
	s.Require().NoError(err)
	s.Equal(int64(2), rank)

	rank, err = s.client.SortedSetRevRank(s.ctx, "board", "cy")
	s.Require().NoError(err)
	s.Zero(rank)

	count, err := s.client.SortedSetCount(s.ctx, "board", "10", "16")
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *ClientSuite) TestSortedSetRanges() {
	_, err := s.client.SortedSetAddMany(s.ctx, "board",
		redis.Z{Score: 1, Member: "a"},
		redis.Z{Score: 2, Member: "b"},
		redis.Z{Score: 3, Member: "c"},
	)
	s.Require().NoError(err)

	members, err := s.client.SortedSetRange(s.ctx, "board", 0, -1)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, members)

	members, err = s.client.SortedSetRevRange(s.ctx, "board", 0, 0)
	s.Require().NoError(err)
	s.Equal([]string{"c"}, members)

	withScores, err := s.client.SortedSetRangeWithScores(s.ctx, "board", 0, 0)
	s.Require().NoError(err)
	s.Equal([]redis.Z{{Score: 1, Member: "a"}}, withScores)

	members, err = s.client.SortedSetRangeByScore(s.ctx, "board", &redis.ZRangeBy{Min: "2", Max: "+inf"})
	s.Require().NoError(err)
	s.Equal([]string{"b", "c"}, members)

	popped, err := s.client.SortedSetPopMin(s.ctx, "board")
	s.Require().NoError(err)
	s.Equal([]redis.Z{{Score: 1, Member: "a"}}, popped)

	n, err := s.client.SortedSetRemoveRangeByScore(s.ctx, "board", "-inf", "2")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	size, err := s.client.SortedSetLen(s.ctx, "board")
	s.Require().NoError(err)
	s.Equal(int64(1), size)
}

func (s *ClientSuite) TestSortedSetStore() {
	_, err := s.client.SortedSetAddMany(s.ctx, "x", redis.Z{Score: 1, Member: "m"}, redis.Z{Score: 2, Member: "n"})
	s.Require().NoError(err)
	_, err = s.client.SortedSetAddMany(s.ctx, "y", redis.Z{Score: 10, Member: "m"})
	s.Require().NoError(err)

	store := &redis.ZStore{Keys: []string{"x", "y"}}
	n, err := s.client.SortedSetUnionStore(s.ctx, "sum", store)
	s.Require().NoError(err)
	s.Equal(int64(2), n)
	s.Equal([]string{"x", "y"}, store.Keys)

	score, err := s.client.SortedSetScore(s.ctx, "sum", "m")
	s.Require().NoError(err)
	s.Equal(11.0, score)

	n, err = s.client.SortedSetInterStore(s.ctx, "common", store)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	scanned, err := s.client.SortedSetScan(s.ctx, "sum", "*", 10)
	s.Require().NoError(err)
	s.ElementsMatch([]redis.Z{{Score: 2, Member: "n"}, {Score: 11, Member: "m"}}, scanned)
}

func (s *ClientSuite) TestSortedSetReverseRanges() {
	_, err := s.client.SortedSetAddMany(s.ctx, "names",
		redis.Z{Score: 0, Member: "ada"},
		redis.Z{Score: 0, Member: "bob"},
		redis.Z{Score: 0, Member: "cy"},
	)
	s.Require().NoError(err)

	members, err := s.client.SortedSetRevRangeByLex(s.ctx, "names", &redis.ZRangeBy{Min: "[b", Max: "+"})
	s.Require().NoError(err)
	s.Equal([]string{"cy", "bob"}, members)

	_, err = s.client.SortedSetAddMany(s.ctx, "board",
		redis.Z{Score: 1, Member: "a"},
		redis.Z{Score: 2, Member: "b"},
	)
	s.Require().NoError(err)

	withScores, err := s.client.SortedSetRevRangeByScoreWithScores(s.ctx, "board", &redis.ZRangeBy{Min: "-inf", Max: "+inf"})
	s.Require().NoError(err)
	s.Equal([]redis.Z{{Score: 2, Member: "b"}, {Score: 1, Member: "a"}}, withScores)

	popped, err := s.client.SortedSetBlockPopMax(s.ctx, time.Second, "none", "board")
	s.Require().NoError(err)
	s.Equal("board", popped.Key)
	s.Equal("b", popped.Member)
	s.Equal(2.0, popped.Score)
}
