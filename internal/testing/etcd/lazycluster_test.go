package etcd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvrange/internal/testing/etcd"
)

func TestNewLazyCluster_NotStarted(t *testing.T) {
	t.Parallel()

	cluster := etcd.NewLazyCluster(etcd.WithSize(3), etcd.WithName("unused"))
	require.NotNil(t, cluster)

	assert.Equal(t, "unused", cluster.TB().Name())

	// Terminating a cluster that never started does not start it.
	cluster.Terminate()
	cluster.Terminate()
}

func TestSilentTB(t *testing.T) {
	t.Parallel()

	tb := etcd.NewSilentTB(t)
	tb.Log("dropped")
	tb.Logf("dropped %d", 1)

	assert.Equal(t, t.Name(), tb.Name())
}
