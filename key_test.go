package redix_test

import (
	"time"

	"github.com/arklib/redix/internal/testutil"
)

func (s *ClientSuite) TestKeyLifecycle() {
	s.Require().NoError(s.client.StringSet(s.ctx, "k1", "v", 0))
	s.Require().NoError(s.client.StringSet(s.ctx, "k2", "v", 0))

	n, err := s.client.KeyExists(s.ctx, "k1", "k2", "k3")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	ok, err := s.client.KeyExpire(s.ctx, "k1", time.Minute)
	s.Require().NoError(err)
	s.True(ok)

	ttl, err := s.client.KeyTTL(s.ctx, "k1")
	s.Require().NoError(err)
	s.Equal(time.Minute, ttl)

	ok, err = s.client.KeyPersist(s.ctx, "k1")
	s.Require().NoError(err)
	s.True(ok)

	typ, err := s.client.KeyType(s.ctx, "k1")
	s.Require().NoError(err)
	s.Equal("string", typ)

	s.Require().NoError(s.client.KeyRename(s.ctx, "k1", "k3"))
	s.True(s.mr.Exists("app:k3"))

	ok, err = s.client.KeyRenameNX(s.ctx, "k3", "k2")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.client.KeyCopy(s.ctx, "k3", "k4", 0, false)
	s.Require().NoError(err)
	s.True(ok)

	n, err = s.client.KeyDelete(s.ctx, "k2", "k3", "k4")
	s.Require().NoError(err)
	s.Equal(int64(3), n)
}

func (s *ClientSuite) TestKeyExpireByTime() {
	s.Require().NoError(s.client.StringSet(s.ctx, "session", "v", 0))

	ok, err := s.client.KeyExpireAt(s.ctx, "session", time.Now().Add(time.Hour))
	s.Require().NoError(err)
	s.True(ok)
	s.True(s.mr.TTL("app:session") > 0)

	s.mr.FastForward(2 * time.Hour)
	s.False(s.mr.Exists("app:session"))

	s.Require().NoError(s.client.StringSet(s.ctx, "token", "v", 0))
	ok, err = s.client.KeyPExpireAt(s.ctx, "token", time.Now().Add(time.Minute))
	s.Require().NoError(err)
	s.True(ok)
	s.True(s.mr.TTL("app:token") > 0)
}

func (s *ClientSuite) TestKeyScan() {
	for _, key := range []string{"user:1", "user:2", "order:1"} {
		s.Require().NoError(s.client.StringSet(s.ctx, key, "v", 0))
	}
	// outside the prefix
	s.Require().NoError(s.mr.Set("user:3", "v"))

	keys, err := s.client.KeyScan(s.ctx, "user:*", 10)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"user:1", "user:2"}, keys)

	keys, err = s.client.KeyKeys(s.ctx, "*")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"user:1", "user:2", "order:1"}, keys)
}

func (s *ClientSuite) TestKeyScanEmptyMatchCoversPrefix() {
	for _, key := range []string{"a", "b"} {
		s.Require().NoError(s.client.StringSet(s.ctx, key, "v", 0))
	}
	s.Require().NoError(s.mr.Set("other", "v"))

	keys, err := s.client.KeyScan(s.ctx, "", 0)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b"}, keys)

	keys, err = s.client.KeyKeys(s.ctx, "")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b"}, keys)

	plain, _ := testutil.NewClient(s.T(), nil)
	for _, key := range []string{"a", "b"} {
		s.Require().NoError(plain.StringSet(s.ctx, key, "v", 0))
	}
	keys, err = plain.KeyScan(s.ctx, "", 0)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b"}, keys)
}
