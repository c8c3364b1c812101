package redix_test

import (
	"github.com/redis/go-redis/v9"
)

func (s *ClientSuite) TestStreamAddAndRange() {
	id1, err := s.client.StreamAdd(s.ctx, "events", map[string]any{"type": "login"})
	s.Require().NoError(err)
	_, err = s.client.StreamAddArgs(s.ctx, &redis.XAddArgs{
		Stream: "events",
		Values: map[string]any{"type": "logout"},
	})
	s.Require().NoError(err)
	s.True(s.mr.Exists("app:events"))

	n, err := s.client.StreamLen(s.ctx, "events")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	msgs, err := s.client.StreamRange(s.ctx, "events", "-", "+")
	s.Require().NoError(err)
	s.Require().Len(msgs, 2)
	s.Equal(id1, msgs[0].ID)
	s.Equal("login", msgs[0].Values["type"])

	msgs, err = s.client.StreamRevRangeN(s.ctx, "events", "+", "-", 1)
	s.Require().NoError(err)
	s.Equal("logout", msgs[0].Values["type"])

	streams, err := s.client.StreamRead(s.ctx, &redis.XReadArgs{
		Streams: []string{"events", "0"},
		Count:   1,
		Block:   -1,
	})
	s.Require().NoError(err)
	s.Require().Len(streams, 1)
	s.Equal("events", streams[0].Stream)

	n, err = s.client.StreamDelete(s.ctx, "events", id1)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.client.StreamTrimMaxLen(s.ctx, "events", 0)
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *ClientSuite) TestStreamGroups() {
	s.Require().NoError(s.client.StreamGroupCreate(s.ctx, "orders", "billing", "0"))
	// existing groups are fine
	s.Require().NoError(s.client.StreamGroupCreate(s.ctx, "orders", "billing", "0"))

	id, err := s.client.StreamAdd(s.ctx, "orders", map[string]any{"id": "7"})
	s.Require().NoError(err)

	streams, err := s.client.StreamReadGroup(s.ctx, &redis.XReadGroupArgs{
		Group:    "billing",
		Consumer: "worker-1",
		Streams:  []string{"orders", ">"},
		Count:    10,
		Block:    -1,
	})
	s.Require().NoError(err)
	s.Require().Len(streams, 1)
	s.Equal("orders", streams[0].Stream)
	s.Require().Len(streams[0].Messages, 1)
	s.Equal(id, streams[0].Messages[0].ID)

	pending, err := s.client.StreamPending(s.ctx, "orders", "billing")
	s.Require().NoError(err)
	s.Equal(int64(1), pending.Count)

	n, err := s.client.StreamAck(s.ctx, "orders", "billing", id)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	pending, err = s.client.StreamPending(s.ctx, "orders", "billing")
	s.Require().NoError(err)
	s.Zero(pending.Count)

	n, err = s.client.StreamGroupDestroy(s.ctx, "orders", "billing")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *ClientSuite) TestStreamAddTrims() {
	for _, id := range []string{"1-1", "2-1"} {
		_, err := s.client.StreamAddArgs(s.ctx, &redis.XAddArgs{
			Stream: "audit",
			ID:     id,
			Values: map[string]any{"n": id},
		})
		s.Require().NoError(err)
	}

	id, err := s.client.StreamAddMinID(s.ctx, "audit", "2-0", map[string]any{"n": "new"})
	s.Require().NoError(err)

	entries, err := s.client.StreamRange(s.ctx, "audit", "-", "+")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("2-1", entries[0].ID)
	s.Equal(id, entries[1].ID)

	for i := 0; i < 4; i++ {
		_, err = s.client.StreamAddMaxLen(s.ctx, "feed", 2, map[string]any{"i": i})
		s.Require().NoError(err)
	}
	n, err := s.client.StreamLen(s.ctx, "feed")
	s.Require().NoError(err)
	s.GreaterOrEqual(n, int64(2))
	s.LessOrEqual(n, int64(4))
	s.True(s.mr.Exists("app:feed"))
}
