// Package tkv provides a Tarantool config storage driver implementation.
// It enables using Tarantool as a distributed key-value storage backend.
//
// Config storage reads whole paths at the latest revision, so range queries
// are limited to single keys and "/"-terminated prefixes. Sorting, filters
// and limits are applied on the client.
package tkv

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tarantool/go-tarantool/v2"

	"github.com/tarantool/go-kvrange/driver"
	"github.com/tarantool/go-kvrange/internal/rangeeval"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
	"github.com/tarantool/go-kvrange/tx"
	"github.com/tarantool/go-kvrange/watch"
)

// DoerWatcher is an interface that combines tarantool.Doer and NewWatcher method.
// tarantool.Connection and pool.ConnectionAdapter implement this interface.
type DoerWatcher interface {
	tarantool.Doer

	NewWatcher(key string, callback tarantool.WatchCallback) (tarantool.Watcher, error)
}

// Driver is a Tarantool implementation of the storage driver interface.
// It uses TKV as the underlying key-value storage backend.
type Driver struct {
	conn DoerWatcher // Tarantool connection pool.
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct

	// ErrUnexpectedResponse is returned when the response from tarantool has unexpected format.
	ErrUnexpectedResponse = errors.New("unexpected response from tarantool")
)

// New creates a new Tarantool driver instance.
// It establishes connections to Tarantool instances using the provided addresses.
func New(doer DoerWatcher) *Driver {
	return &Driver{conn: doer}
}

// Execute executes a transactional operation with conditional logic.
// It processes predicates to determine whether to execute thenOps or elseOps.
func (d Driver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	err := validatePredicates(predicates)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to execute transaction: %w", err)
	}

	for _, ops := range [][]operation.Operation{thenOps, elseOps} {
		err = validateOperations(ops)
		if err != nil {
			return tx.Response{}, fmt.Errorf("failed to execute transaction: %w", err)
		}
	}

	result, err := d.txn(ctx, newTxnRequest(predicates, thenOps, elseOps))
	if err != nil {
		return tx.Response{}, err
	}

	if result.Data.IsSuccess {
		return result.asTxnResponse(thenOps), nil
	}

	return result.asTxnResponse(elseOps), nil
}

// Range reads the query interval and shapes the pairs by the query.
// The header carries only the storage revision.
func (d Driver) Range(ctx context.Context, query rangequery.Query) (rangequery.Result, error) {
	_, err := rangePath(query)
	if err != nil {
		return rangequery.Result{}, err
	}

	result, err := d.txn(ctx, newTxnRequest(nil, []operation.Operation{operation.Range(query)}, nil))
	if err != nil {
		return rangequery.Result{}, err
	}

	if len(result.Data.Responses) != 1 {
		return rangequery.Result{}, fmt.Errorf("%w: expected 1 range response, got %d",
			ErrUnexpectedResponse, len(result.Data.Responses))
	}

	page := rangeeval.Evaluate(query, result.keyValues(result.Data.Responses[0]))

	return rangequery.Result{
		Header: result.header(),
		KVs:    page.KVs,
		More:   page.More,
		Count:  uint64(page.Count), //nolint:gosec
	}, nil
}

func (d Driver) txn(ctx context.Context, txnArg txnRequest) (txnResponse, error) {
	req := tarantool.NewCallRequest("config.storage.txn").
		Args([]any{txnArg}).Context(ctx)

	var result []txnResponse

	switch err := d.conn.Do(req).GetTyped(&result); {
	case err != nil:
		return txnResponse{}, fmt.Errorf("failed to execute transaction: %w", err)
	case len(result) != 1:
		return txnResponse{}, fmt.Errorf("%w: expected 1 response, got %d", ErrUnexpectedResponse, len(result))
	}

	return result[0], nil
}

// Watch monitors changes to a specific key and returns a stream of events.
// It supports optional watch configuration through the opts parameter.
// To watch for config storage key "config.storage:" prefix should be used.
func (d Driver) Watch(ctx context.Context, key []byte, _ ...watch.Option) (<-chan watch.Event, func(), error) {
	rvChan := make(chan watch.Event, 1)

	watcher, err := d.conn.NewWatcher("config.storage:"+string(key), func(event tarantool.WatchEvent) {
		select {
		case rvChan <- watch.Event{Prefix: key, Revision: eventRevision(event.Value)}:
		default:
		}
	})
	if err != nil {
		close(rvChan)
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	var (
		stopOnce  sync.Once
		isStopped = make(chan struct{})
	)

	go func() {
		defer func() {
			// No callbacks run after Unregister returns, so rvChan can be closed.
			watcher.Unregister()
			close(rvChan)
		}()

		select {
		case <-ctx.Done():
		case <-isStopped:
		}
	}()

	return rvChan, func() { stopOnce.Do(func() { close(isStopped) }) }, nil
}

// eventRevision extracts the revision config storage broadcasts with a change.
// Unknown payloads give 0.
func eventRevision(value any) int64 {
	switch rev := value.(type) {
	case int64:
		return rev
	case int32:
		return int64(rev)
	case int16:
		return int64(rev)
	case int8:
		return int64(rev)
	case uint64:
		return int64(rev) //nolint:gosec
	case uint32:
		return int64(rev)
	case uint16:
		return int64(rev)
	case uint8:
		return int64(rev)
	default:
		return 0
	}
}
