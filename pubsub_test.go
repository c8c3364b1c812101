package redix_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

func (s *ClientSuite) waitSubscribers(channel string, want int64) {
	s.Require().Eventually(func() bool {
		n, err := s.client.PubSubNumSub(s.ctx, channel)
		return err == nil && n[channel] == want
	}, time.Second, 10*time.Millisecond)
}

func (s *ClientSuite) TestSubscribeFunc() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	var mu sync.Mutex
	var got []string
	done := make(chan error, 1)
	go func() {
		done <- s.client.SubscribeFunc(ctx, func(ctx context.Context, msg *redis.Message) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, msg.Payload)
			return nil
		}, "news")
	}()
	s.waitSubscribers("news", 1)

	channels, err := s.client.PubSubChannels(s.ctx, "*")
	s.Require().NoError(err)
	s.Equal([]string{"news"}, channels)

	for _, payload := range []string{"one", "two"} {
		n, err := s.client.Publish(s.ctx, "news", payload)
		s.Require().NoError(err)
		s.Equal(int64(1), n)
	}
	s.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("subscriber did not stop")
	}
}

func (s *ClientSuite) TestSubscribeFuncStopsOnHandlerError() {
	stop := errors.New("stop")
	done := make(chan error, 1)
	go func() {
		done <- s.client.PSubscribeFunc(s.ctx, func(ctx context.Context, msg *redis.Message) error {
			return stop
		}, "alerts.*")
	}()

	s.Require().Eventually(func() bool {
		n, err := s.client.PubSubNumPat(s.ctx)
		return err == nil && n == 1
	}, time.Second, 10*time.Millisecond)

	_, err := s.client.Publish(s.ctx, "alerts.disk", "full")
	s.Require().NoError(err)

	select {
	case err := <-done:
		s.ErrorIs(err, stop)
	case <-time.After(time.Second):
		s.Fail("subscriber did not stop")
	}
}
