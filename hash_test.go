package redix_test

import (
	"github.com/redis/go-redis/v9"
)

type hashUser struct {
	Name string `redis:"name"`
	Age  int    `redis:"age"`
}

func (s *ClientSuite) TestHashFields() {
	created, err := s.client.HashSet(s.ctx, "user:1", "name", "ada")
	s.Require().NoError(err)
	s.True(created)

	created, err = s.client.HashSet(s.ctx, "user:1", "name", "ada l")
	s.Require().NoError(err)
	s.False(created)

	ok, err := s.client.HashSetNX(s.ctx, "user:1", "name", "bob")
	s.Require().NoError(err)
	s.False(ok)

	v, err := s.client.HashGet(s.ctx, "user:1", "name")
	s.Require().NoError(err)
	s.Equal("ada l", v)

	_, err = s.client.HashGet(s.ctx, "user:1", "missing")
	s.ErrorIs(err, redis.Nil)

	ok, err = s.client.HashExists(s.ctx, "user:1", "name")
	s.Require().NoError(err)
	s.True(ok)

	n, err := s.client.HashIncrBy(s.ctx, "user:1", "logins", 2)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.client.HashDelete(s.ctx, "user:1", "logins", "missing")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *ClientSuite) TestHashSetMapAndGetFields() {
	n, err := s.client.HashSetMap(s.ctx, "user:2", map[string]any{"name": "cy", "age": 30, "city": "Oslo"})
	s.Require().NoError(err)
	s.Equal(int64(3), n)
	s.Equal("30", s.mr.HGet("app:user:2", "age"))

	n, err = s.client.HashSetMap(s.ctx, "user:2", nil)
	s.Require().NoError(err)
	s.Zero(n)

	fields, err := s.client.HashGetFields(s.ctx, "user:2", "name", "missing", "age")
	s.Require().NoError(err)
	s.Equal(map[string]string{"name": "cy", "age": "30"}, fields)

	all, err := s.client.HashGetAll(s.ctx, "user:2")
	s.Require().NoError(err)
	s.Len(all, 3)

	keys, err := s.client.HashKeys(s.ctx, "user:2")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"name", "age", "city"}, keys)

	size, err := s.client.HashLen(s.ctx, "user:2")
	s.Require().NoError(err)
	s.Equal(int64(3), size)

	var u hashUser
	s.Require().NoError(s.client.HashScanAll(s.ctx, "user:2", &u))
	s.Equal(hashUser{Name: "cy", Age: 30}, u)
}

func (s *ClientSuite) TestHashSetStruct() {
	_, err := s.client.HashSetStruct(s.ctx, "user:3", &hashUser{Name: "dee", Age: 41})
	s.Require().NoError(err)
	s.Equal("dee", s.mr.HGet("app:user:3", "name"))

	scanned, err := s.client.HashScan(s.ctx, "user:3", "*", 10)
	s.Require().NoError(err)
	s.Equal(map[string]string{"name": "dee", "age": "41"}, scanned)
}
