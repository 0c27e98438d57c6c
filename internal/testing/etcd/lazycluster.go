// Package etcd starts embedded etcd clusters for integration tests and
// runnable examples.
package etcd

import (
	"net/http"
	"sync"
	"time"

	"go.etcd.io/etcd/client/pkg/v3/testutil"
	"go.etcd.io/etcd/client/pkg/v3/transport"
	etcdintegration "go.etcd.io/etcd/tests/v3/framework/integration"
	etcdlazy "go.etcd.io/etcd/tests/v3/integration"

	"github.com/tarantool/go-kvrange/internal/options"
)

const transportDialTimeout = time.Second

// LazyCluster is a cluster started on first use.
type LazyCluster = etcdlazy.LazyCluster

type clusterOptions struct {
	Size int
	Name string
}

// Option configures NewLazyCluster.
type Option = options.OptionCallback[clusterOptions]

// WithSize sets the number of cluster members, 1 by default.
func WithSize(size int) Option {
	return func(opts *clusterOptions) {
		opts.Size = size
	}
}

// WithName sets the name reported by the cluster's test handle.
func WithName(name string) Option {
	return func(opts *clusterOptions) {
		opts.Name = name
	}
}

func defaultClusterOptions() clusterOptions {
	return clusterOptions{Size: 1, Name: "lazy_cluster"}
}

type lazyCluster struct {
	cfg etcdintegration.ClusterConfig
	tb  *discardTB

	once      sync.Once
	cluster   *etcdintegration.Cluster
	transport *http.Transport
}

var _ LazyCluster = (*lazyCluster)(nil)

// NewLazyCluster returns a cluster that is started by the first call to
// Cluster, EndpointsGRPC, EndpointsHTTP or Transport. Cluster logs are
// discarded.
func NewLazyCluster(opts ...Option) LazyCluster {
	cfg := options.ApplyOptions(defaultClusterOptions, opts)

	return &lazyCluster{
		cfg:       etcdintegration.ClusterConfig{Size: cfg.Size}, //nolint:exhaustruct
		tb:        newDiscardTB(cfg.Name),
		once:      sync.Once{},
		cluster:   nil,
		transport: nil,
	}
}

func (c *lazyCluster) start() {
	c.once.Do(func() {
		tr, err := transport.NewTransport(transport.TLSInfo{}, transportDialTimeout) //nolint:exhaustruct
		if err != nil {
			// The cluster handle has no error return to report through.
			panic(err)
		}

		c.transport = tr
		c.cluster = etcdintegration.NewCluster(c.tb, &c.cfg)
	})
}

// Terminate stops the cluster if it was started. It is safe on a nil or
// never started cluster.
func (c *lazyCluster) Terminate() {
	if c == nil {
		return
	}

	if c.cluster != nil {
		c.cluster.Terminate(nil)
		c.cluster = nil
	}

	c.tb.runCleanups()
}

func (c *lazyCluster) Cluster() *etcdintegration.Cluster {
	c.start()

	return c.cluster
}

func (c *lazyCluster) EndpointsGRPC() []string {
	return c.Cluster().Client(0).Endpoints()
}

func (c *lazyCluster) EndpointsHTTP() []string {
	return []string{c.Cluster().Members[0].URL()}
}

func (c *lazyCluster) Transport() *http.Transport {
	c.start()

	return c.transport
}

func (c *lazyCluster) TB() testutil.TB {
	return c.tb
}
