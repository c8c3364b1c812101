// Package testutil starts in-memory Redis servers for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/arklib/redix"
)

// NewClient returns a facade over a fresh miniredis. Both are closed when the
// test ends.
func NewClient(t *testing.T, opts *redix.Options) (*redix.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
	})
	require.NoError(t, rdb.Ping(context.Background()).Err())
	return redix.NewWithClient(rdb, opts), mr
}
