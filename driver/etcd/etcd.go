// Package etcd provides an etcd implementation of the storage driver interface.
// It enables using etcd as a distributed key-value storage backend.
package etcd

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
	etcd "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/tarantool/go-kvrange/driver"
	"github.com/tarantool/go-kvrange/header"
	"github.com/tarantool/go-kvrange/internal/options"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
	"github.com/tarantool/go-kvrange/tx"
	"github.com/tarantool/go-kvrange/watch"
)

// Client defines the minimal interface needed for etcd operations.
// This allows for easier testing and mock implementations.
type Client interface {
	// Txn creates a new transaction.
	Txn(ctx context.Context) etcd.Txn
}

// RangeClient sends range requests as they are, field for field.
// etcdserverpb.KVClient implements this interface.
type RangeClient interface {
	Range(
		ctx context.Context,
		in *etcdserverpb.RangeRequest,
		opts ...grpc.CallOption,
	) (*etcdserverpb.RangeResponse, error)
}

// Watcher defines the interface for watching etcd changes.
// This extends the etcd.Watcher interface to match our usage pattern.
type Watcher interface {
	// Watch watches for changes on a key (using etcd's signature).
	Watch(ctx context.Context, key string, opts ...etcd.OpOption) etcd.WatchChan
	// Close closes the watcher.
	Close() error
}

// WatcherFactory creates new watchers from a client.
type WatcherFactory interface {
	// NewWatcher creates a new watcher.
	NewWatcher(client Client) Watcher
}

// Driver is an etcd implementation of the storage driver interface.
// It uses etcd as the underlying key-value storage backend.
type Driver struct {
	client         Client         // etcd client interface.
	rangeClient    RangeClient    // raw KV client for range requests.
	watcherFactory WatcherFactory // factory for creating watchers.
	logger         *zap.Logger
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct

	// Static error definitions to avoid dynamic errors.
	errUnsupportedPredicateTarget  = errors.New("unsupported predicate target")
	errValuePredicateType          = errors.New("value predicate requires []byte or string value")
	errUnsupportedValueOperation   = errors.New("unsupported operation for value predicate")
	errVersionPredicateType        = errors.New("version predicate requires int64 value")
	errUnsupportedVersionOperation = errors.New("unsupported operation for version predicate")
	errUnsupportedOperationType    = errors.New("unsupported operation type")
)

type driverOptions struct {
	Logger         *zap.Logger
	WatcherFactory WatcherFactory
}

// Option configures the etcd driver.
type Option = options.OptionCallback[driverOptions]

// WithLogger sets the logger for request failures. Nothing is logged by default.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *driverOptions) {
		opts.Logger = logger
	}
}

// WithWatcherFactory replaces the factory Watch gets its watchers from.
func WithWatcherFactory(factory WatcherFactory) Option {
	return func(opts *driverOptions) {
		opts.WatcherFactory = factory
	}
}

func defaultOptions() driverOptions {
	return driverOptions{
		Logger:         zap.NewNop(),
		WatcherFactory: &etcdWatcherFactory{},
	}
}

// etcdClientAdapter wraps etcd.Client to implement our Client interface.
type etcdClientAdapter struct {
	client *etcd.Client
}

func (a *etcdClientAdapter) Txn(ctx context.Context) etcd.Txn {
	return a.client.Txn(ctx)
}

// etcdWatcherAdapter wraps etcd.Watcher to implement our Watcher interface.
type etcdWatcherAdapter struct {
	watcher etcd.Watcher
}

func (a *etcdWatcherAdapter) Watch(ctx context.Context, key string, opts ...etcd.OpOption) etcd.WatchChan {
	return a.watcher.Watch(ctx, key, opts...)
}

func (a *etcdWatcherAdapter) Close() error {
	err := a.watcher.Close()
	if err != nil {
		return fmt.Errorf("failed to close: %w", err)
	}

	return nil
}

// etcdWatcherFactory implements WatcherFactory for etcd clients.
type etcdWatcherFactory struct{}

func (f *etcdWatcherFactory) NewWatcher(client Client) Watcher {
	// For etcd clients, we need access to the underlying client.
	if adapter, ok := client.(*etcdClientAdapter); ok {
		return &etcdWatcherAdapter{
			watcher: etcd.NewWatcher(adapter.client),
		}
	}

	// For other implementations, return a no-op watcher.
	return &noopWatcher{}
}

// noopWatcher is a no-op implementation of Watcher for non-etcd clients.
type noopWatcher struct{}

func (w *noopWatcher) Watch(_ context.Context, _ string, _ ...etcd.OpOption) etcd.WatchChan {
	ch := make(chan etcd.WatchResponse)
	close(ch)

	return ch
}

func (w *noopWatcher) Close() error {
	return nil
}

// New creates a new etcd driver instance using an existing etcd client.
// The client should be properly configured and connected to an etcd cluster.
func New(client *etcd.Client, opts ...Option) *Driver {
	return NewWithClients(&etcdClientAdapter{client: client}, etcd.RetryKVClient(client), opts...)
}

// NewWithClients creates a driver over custom transaction and range clients.
// Watch is a no-op unless client comes from New or WithWatcherFactory is given.
func NewWithClients(client Client, rangeClient RangeClient, opts ...Option) *Driver {
	cfg := options.ApplyOptions(defaultOptions, opts)

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.WatcherFactory == nil {
		cfg.WatcherFactory = &etcdWatcherFactory{}
	}

	return &Driver{
		client:         client,
		rangeClient:    rangeClient,
		watcherFactory: cfg.WatcherFactory,
		logger:         cfg.Logger,
	}
}

// Range sends the finalized query and decodes the reply.
// A reply without header metadata or with a malformed pair is an error.
func (d Driver) Range(ctx context.Context, query rangequery.Query) (rangequery.Result, error) {
	err := query.Validate()
	if err != nil {
		return rangequery.Result{}, err
	}

	resp, err := d.rangeClient.Range(ctx, query.Proto())
	if err != nil {
		d.logger.Debug("range request failed",
			zap.Stringer("range", query.KeyRange()),
			zap.Int64("revision", query.Revision()),
			zap.Error(err))

		return rangequery.Result{}, fmt.Errorf("range request failed: %w", err)
	}

	result, err := rangequery.Decode(resp)
	if err != nil {
		d.logger.Warn("rejected range response",
			zap.Stringer("range", query.KeyRange()),
			zap.Error(err))

		return rangequery.Result{}, fmt.Errorf("range request failed: %w", err)
	}

	return result, nil
}

// Execute executes a transactional operation with conditional logic.
// It processes predicates to determine whether to execute thenOps or elseOps.
func (d Driver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	txn := d.client.Txn(ctx)

	convertedPredicates, err := predicatesToCmps(predicates)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to convert predicates: %w", err)
	}

	txn.If(convertedPredicates...)

	thenEtcdOps, err := operationsToEtcdOps(thenOps)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to convert then operations: %w", err)
	}

	txn.Then(thenEtcdOps...)

	elseEtcdOps, err := operationsToEtcdOps(elseOps)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to convert else operations: %w", err)
	}

	txn.Else(elseEtcdOps...)

	resp, err := txn.Commit()
	if err != nil {
		d.logger.Debug("transaction failed", zap.Int("predicates", len(predicates)), zap.Error(err))

		return tx.Response{}, fmt.Errorf("transaction failed: %w", err)
	}

	response, err := etcdResponseToTxResponse(resp)
	if err != nil {
		d.logger.Warn("rejected transaction response", zap.Error(err))

		return tx.Response{}, fmt.Errorf("transaction failed: %w", err)
	}

	return response, nil
}

const (
	eventChannelSize = 100
)

// Watch monitors changes to a specific key and returns a stream of events.
// Keys ending with "/" and watches with watch.WithPrefix cover every key under the prefix.
func (d Driver) Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, func(), error) {
	eventCh := make(chan watch.Event, eventChannelSize)

	parentWatcher := d.watcherFactory.NewWatcher(d.client)

	var etcdOpts []etcd.OpOption
	if watch.Apply(opts).Prefix || bytes.HasSuffix(key, []byte("/")) {
		etcdOpts = append(etcdOpts, etcd.WithPrefix())
	}

	watchChan := parentWatcher.Watch(ctx, string(key), etcdOpts...)

	go func() {
		defer close(eventCh)

		for {
			select {
			case <-ctx.Done():
				return
			case watchResp, ok := <-watchChan:
				if !ok {
					return
				}

				if watchResp.Err() != nil {
					d.logger.Debug("watch response error", zap.ByteString("key", key), zap.Error(watchResp.Err()))
					continue
				}

				for _, event := range watchResp.Events {
					select {
					case eventCh <- watch.Event{
						Prefix:   key,
						Revision: event.Kv.ModRevision,
					}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return eventCh, func() {
		_ = parentWatcher.Close()
	}, nil
}

// etcdResponseToTxResponse converts an etcd transaction response to tx.Response.
func etcdResponseToTxResponse(resp *etcd.TxnResponse) (tx.Response, error) {
	hdr, err := header.FromProto(resp.Header)
	if err != nil {
		return tx.Response{}, fmt.Errorf("%w: %w", rangequery.ErrMissingMetadata, err)
	}

	results := make([]tx.RequestResponse, 0, len(resp.Responses))

	for i, etcdResp := range resp.Responses {
		var (
			result tx.RequestResponse
			err    error
		)

		switch {
		case etcdResp.GetResponseRange() != nil:
			getResp := etcdResp.GetResponseRange()

			result.Values, err = rangequery.DecodeKVs(getResp.GetKvs())
			result.More = getResp.GetMore()
			result.Count = getResp.GetCount()
		case etcdResp.GetResponsePut() != nil:
			// Put operations don't return data.
		case etcdResp.GetResponseDeleteRange() != nil:
			deleteResp := etcdResp.GetResponseDeleteRange()

			result.Values, err = rangequery.DecodeKVs(deleteResp.GetPrevKvs())
			result.Count = deleteResp.GetDeleted()
		}

		if err != nil {
			return tx.Response{}, fmt.Errorf("response #%d: %w", i, err)
		}

		results = append(results, result)
	}

	return tx.Response{
		Header:    hdr,
		Succeeded: resp.Succeeded,
		Results:   results,
	}, nil
}
