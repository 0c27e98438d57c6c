package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvrange/driver"
	"github.com/tarantool/go-kvrange/internal/options"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
	txPkg "github.com/tarantool/go-kvrange/tx"
	"github.com/tarantool/go-kvrange/watch"
)

// Storage is the main interface for key-value storage operations.
// It provides methods for watching changes, transaction management, and range queries.
type Storage interface {
	// Watch streams changes for a specific key or prefix.
	// Options:
	//   - watch.WithPrefix: watch for changes on keys with the specified prefix
	// The returned function stops the watch.
	Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, func(), error)

	// Tx creates a new transaction.
	// The context manages timeouts and cancellation for the transaction.
	Tx(ctx context.Context) txPkg.Tx

	// Range executes a single range query.
	Range(ctx context.Context, query rangequery.Query) (rangequery.Result, error)

	// Paginate executes the query page by page, calling fn for every page.
	// All pages observe the revision of the first one. Iteration stops at the
	// first error returned by fn. Only key ascending order is split into
	// pages; other orders are fetched whole and reject a query limit with
	// ErrUnpaginatable.
	Paginate(ctx context.Context, query rangequery.Query, fn func(rangequery.Result) error) error
}

// ErrUnpaginatable is returned by Paginate when the query order does not
// allow resuming after the last returned key.
var ErrUnpaginatable = errors.New("query cannot be paginated")

// storageOptions contains configuration options for storage instances.
type storageOptions struct {
	Timeout    time.Duration
	MaxRetries uint64
	RetryBase  time.Duration
	PageSize   uint64
}

// Option is a function that configures storage options.
type Option = options.OptionCallback[storageOptions]

const (
	defaultRetryBase = 100 * time.Millisecond
	defaultPageSize  = 1000
)

// WithTimeout bounds every range request and transaction commit.
// Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *storageOptions) {
		opts.Timeout = timeout
	}
}

// WithRetry retries failed range requests up to maxRetries times with a
// Fibonacci backoff starting at base. Errors wrapping driver.ErrPermanent,
// invalid queries, malformed replies and cancellation are not retried.
func WithRetry(maxRetries uint64, base time.Duration) Option {
	return func(opts *storageOptions) {
		opts.MaxRetries = maxRetries
		opts.RetryBase = base
	}
}

// WithPageSize sets the limit Paginate uses for queries without one.
func WithPageSize(size uint64) Option {
	return func(opts *storageOptions) {
		opts.PageSize = size
	}
}

func defaultOptions() storageOptions {
	return storageOptions{
		Timeout:    0,
		MaxRetries: 0,
		RetryBase:  defaultRetryBase,
		PageSize:   defaultPageSize,
	}
}

// storage is the concrete implementation of the Storage interface.
type storage struct {
	driver  driver.Driver // Underlying storage driver.
	options storageOptions
}

// NewStorage creates a new Storage instance with the specified driver.
// Optional Option parameters can be provided to configure the storage.
func NewStorage(driver driver.Driver, opts ...Option) Storage {
	return &storage{
		driver:  driver,
		options: options.ApplyOptions(defaultOptions, opts),
	}
}

// Watch implements the Storage interface for watching key changes.
func (s storage) Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, func(), error) {
	events, stop, err := s.driver.Watch(ctx, key, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("watch failed: %w", err)
	}

	return events, stop, nil
}

// Tx implements the Storage interface for transaction creation.
func (s storage) Tx(ctx context.Context) txPkg.Tx {
	return newTx(ctx, s.driver, s.options.Timeout)
}

// Range implements the Storage interface for range queries.
func (s storage) Range(ctx context.Context, query rangequery.Query) (rangequery.Result, error) {
	err := query.Validate()
	if err != nil {
		return rangequery.Result{}, err
	}

	var result rangequery.Result

	err = s.retry(ctx, func(ctx context.Context) error {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()

		res, err := s.driver.Range(ctx, query)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		return rangequery.Result{}, fmt.Errorf("range failed: %w", err)
	}

	return result, nil
}

// Paginate implements the Storage interface for paginated range queries.
// Queries sorted other than by key ascending are fetched in a single page;
// giving such a query a limit is an error since the rest is unreachable.
func (s storage) Paginate(ctx context.Context, query rangequery.Query, fn func(rangequery.Result) error) error {
	natural := query.Sort().IsNatural()

	switch {
	case query.IsCountOnly():
	case query.Limit() == 0 && natural:
		query = query.WithLimit(s.options.PageSize)
	case query.Limit() > 0 && !natural:
		return fmt.Errorf("%w: limit %d with sort %s", ErrUnpaginatable, query.Limit(), query.Sort())
	}

	for {
		result, err := s.Range(ctx, query)
		if err != nil {
			return err
		}

		err = fn(result)
		if err != nil {
			return err
		}

		next, ok := query.NextPage(result)
		if !ok {
			if result.More && !query.IsCountOnly() {
				return fmt.Errorf("%w: more pairs follow but no next page can be built", ErrUnpaginatable)
			}

			return nil
		}

		query = next
	}
}

func (s storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.options.Timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.options.Timeout)
}

func (s storage) retry(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.options.MaxRetries == 0 {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(s.options.MaxRetries, retry.NewFibonacci(s.options.RetryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && ctx.Err() == nil && !isPermanent(err) {
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return fmt.Errorf("after %d retries: %w", s.options.MaxRetries, err)
	}

	return nil
}

// isPermanent reports whether repeating the request cannot change the outcome.
func isPermanent(err error) bool {
	var (
		configErr rangequery.ConfigurationError
		decodeErr rangequery.DecodingError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return true
	case errors.Is(err, driver.ErrPermanent):
		return true
	case errors.As(err, &configErr), errors.As(err, &decodeErr):
		return true
	case errors.Is(err, rangequery.ErrMalformedEntry):
		return true
	default:
		return false
	}
}

// tx is the internal implementation of the Tx interface.
type tx struct {
	driver  driver.Driver
	ctx     context.Context //nolint:containedctx // Context is stored for transaction execution
	timeout time.Duration

	predicates option.Generic[[]predicate.Predicate]
	thenOps    option.Generic[[]operation.Operation]
	elseOps    option.Generic[[]operation.Operation]
}

// newTx creates a new transaction builder with the given driver and context.
func newTx(ctx context.Context, driver driver.Driver, timeout time.Duration) txPkg.Tx {
	return &tx{
		driver:     driver,
		ctx:        ctx,
		timeout:    timeout,
		predicates: option.None[[]predicate.Predicate](),
		thenOps:    option.None[[]operation.Operation](),
		elseOps:    option.None[[]operation.Operation](),
	}
}

// If adds predicates to the transaction condition.
// Empty predicate list means always true (unconditional execution).
// If should be called before Then/Else.
func (tb *tx) If(predicates ...predicate.Predicate) txPkg.Tx {
	if tb.predicates.IsSome() {
		panic("predicates are already set")
	} else if tb.thenOps.IsSome() || tb.elseOps.IsSome() {
		panic("If can only be called before Then/Else")
	}

	tb.predicates = option.Some(predicates)

	return tb
}

// Then adds operations to execute if predicates evaluate to true.
// At least one Then call is required.
// Then can only be called before Else.
func (tb *tx) Then(operations ...operation.Operation) txPkg.Tx {
	if tb.thenOps.IsSome() {
		panic("then operations are already set")
	} else if tb.elseOps.IsSome() {
		panic("Then can only be called before Else")
	}

	tb.thenOps = option.Some(operations)

	return tb
}

// Else adds operations to execute if predicates evaluate to false.
// This is optional.
// Else can only be called before Commit.
func (tb *tx) Else(operations ...operation.Operation) txPkg.Tx {
	if tb.elseOps.IsSome() {
		panic("else operations are already set")
	}

	tb.elseOps = option.Some(operations)

	return tb
}

// Commit atomically executes the transaction by delegating to the driver.
func (tb *tx) Commit() (txPkg.Response, error) {
	ctx := tb.ctx

	if tb.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, tb.timeout)
		defer cancel()
	}

	resp, err := tb.driver.Execute(
		ctx,
		tb.predicates.UnwrapOr(nil),
		tb.thenOps.UnwrapOr(nil),
		tb.elseOps.UnwrapOr(nil),
	)
	if err != nil {
		return txPkg.Response{}, fmt.Errorf("tx execute failed: %w", err)
	}

	return resp, nil
}
