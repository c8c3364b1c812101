package redix_test

import (
	"github.com/redis/go-redis/v9"
)

func (s *ClientSuite) TestGeo() {
	n, err := s.client.GeoAdd(s.ctx, "cities",
		&redis.GeoLocation{Name: "oslo", Longitude: 10.7522, Latitude: 59.9139},
		&redis.GeoLocation{Name: "bergen", Longitude: 5.3221, Latitude: 60.3913},
	)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	pos, err := s.client.GeoPosition(s.ctx, "cities", "oslo", "nowhere")
	s.Require().NoError(err)
	s.Require().Len(pos, 2)
	s.InDelta(10.7522, pos[0].Longitude, 0.001)
	s.Nil(pos[1])

	dist, err := s.client.GeoDistance(s.ctx, "cities", "oslo", "bergen", "km")
	s.Require().NoError(err)
	s.InDelta(305, dist, 10)

	near, err := s.client.GeoRadius(s.ctx, "cities", 10.7, 59.9, &redis.GeoRadiusQuery{Radius: 50, Unit: "km"})
	s.Require().NoError(err)
	s.Require().Len(near, 1)
	s.Equal("oslo", near[0].Name)

	n, err = s.client.GeoRemove(s.ctx, "cities", "bergen")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *ClientSuite) TestHyperLogLog() {
	changed, err := s.client.HyperLogLogAdd(s.ctx, "visitors:mon", "a", "b", "c")
	s.Require().NoError(err)
	s.True(changed)

	_, err = s.client.HyperLogLogAdd(s.ctx, "visitors:tue", "c", "d")
	s.Require().NoError(err)

	s.Require().NoError(s.client.HyperLogLogMerge(s.ctx, "visitors:week", "visitors:mon", "visitors:tue"))
	n, err := s.client.HyperLogLogCount(s.ctx, "visitors:week")
	s.Require().NoError(err)
	s.Equal(int64(4), n)
}
