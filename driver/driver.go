// Package driver defines the interface for storage driver implementations.
// It provides a common interface for different storage backends like etcd and Tarantool.
package driver

import (
	"context"
	"errors"

	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
	"github.com/tarantool/go-kvrange/tx"
	"github.com/tarantool/go-kvrange/watch"
)

// ErrPermanent is wrapped by driver errors for requests that cannot succeed
// when repeated, such as ranges a backend cannot serve or compacted revisions.
var ErrPermanent = errors.New("permanent failure")

// Driver is the interface that storage drivers must implement.
// It provides low-level operations for range queries, transaction execution and watch functionality.
type Driver interface {
	// Range executes a single range query and returns its decoded result.
	// Exactly one result or error is returned for each call.
	Range(ctx context.Context, query rangequery.Query) (rangequery.Result, error)

	// Execute executes a transactional operation with conditional logic.
	// The transaction will execute thenOps if all predicates evaluate to true,
	// otherwise it will execute elseOps.
	Execute(
		ctx context.Context,
		predicates []predicate.Predicate,
		thenOps []operation.Operation,
		elseOps []operation.Operation,
	) (tx.Response, error)

	// Watch establishes a watch stream for changes to a specific key or prefix.
	// The returned channel will receive events as changes occur, the returned
	// function stops the watch.
	Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, func(), error)
}
