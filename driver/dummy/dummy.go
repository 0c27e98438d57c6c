// Package dummy provides a base in-memory implementation
// of the storage driver interface for demonstration and tests.
//
// The driver keeps the full revision history of every key, so range queries
// can be pinned to any revision that has not been compacted.
package dummy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tarantool/go-kvrange/driver"
	"github.com/tarantool/go-kvrange/header"
	"github.com/tarantool/go-kvrange/internal/options"
	"github.com/tarantool/go-kvrange/internal/rangeeval"
	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/kv"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
	"github.com/tarantool/go-kvrange/tx"
	"github.com/tarantool/go-kvrange/watch"
)

var (
	// ErrFutureRevision is returned when a query is pinned to a revision that does not exist yet.
	ErrFutureRevision = errors.New("required revision is a future revision")
	// ErrCompacted is returned when a query is pinned to a compacted revision.
	ErrCompacted = fmt.Errorf("%w: required revision has been compacted", driver.ErrPermanent)

	_ driver.Driver = &Driver{} //nolint:exhaustruct
)

const (
	eventChannelSize = 100
	raftTerm         = 1
)

type watchKey struct {
	key    string
	prefix bool
}

type watcherPrefix struct {
	id    uint64
	chans map[uint64]chan watch.Event
}

// revisionedValue is one entry of the history of a key.
type revisionedValue struct {
	kv        kv.KeyValue
	tombstone bool
}

// dummyStorage is a thread-safe structure that holds the
// key-value history and watch channels.
type dummyStorage struct {
	history          map[string][]revisionedValue
	watchChanStorage map[watchKey]watcherPrefix
	revision         int64
	compacted        int64
	mu               sync.RWMutex
}

type driverOptions struct {
	ClusterID uint64
	MemberID  uint64
}

// Option configures the in-memory driver.
type Option = options.OptionCallback[driverOptions]

// WithClusterID sets the cluster ID reported in response headers.
func WithClusterID(id uint64) Option {
	return func(opts *driverOptions) {
		opts.ClusterID = id
	}
}

// WithMemberID sets the member ID reported in response headers.
func WithMemberID(id uint64) Option {
	return func(opts *driverOptions) {
		opts.MemberID = id
	}
}

func defaultOptions() driverOptions {
	return driverOptions{
		ClusterID: 1,
		MemberID:  1,
	}
}

// Driver is an in-memory multi-version storage driver.
type Driver struct {
	data dummyStorage
	opts driverOptions
}

// New creates an empty in-memory driver at revision 1.
func New(opts ...Option) *Driver {
	return &Driver{
		data: dummyStorage{
			history:          make(map[string][]revisionedValue),
			watchChanStorage: make(map[watchKey]watcherPrefix),
			revision:         1,
			compacted:        0,
			mu:               sync.RWMutex{},
		},
		opts: options.ApplyOptions(defaultOptions, opts),
	}
}

// Revision returns the current revision of the store.
func (d *Driver) Revision() int64 {
	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	return d.data.revision
}

func (d *Driver) header() header.Header {
	return header.Header{
		ClusterID: d.opts.ClusterID,
		MemberID:  d.opts.MemberID,
		Revision:  d.data.revision,
		RaftTerm:  raftTerm,
	}
}

// Range executes a range query against the history.
func (d *Driver) Range(ctx context.Context, query rangequery.Query) (rangequery.Result, error) {
	if err := ctx.Err(); err != nil {
		return rangequery.Result{}, fmt.Errorf("range canceled: %w", err)
	}

	if err := query.Validate(); err != nil {
		return rangequery.Result{}, err
	}

	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	page, err := d.evaluate(query, d.data.revision)
	if err != nil {
		return rangequery.Result{}, err
	}

	return rangequery.Result{
		Header: d.header(),
		KVs:    page.KVs,
		More:   page.More,
		Count:  uint64(page.Count), //nolint:gosec
	}, nil
}

// Compact drops history older than revision. Queries pinned below it fail
// with ErrCompacted afterwards.
func (d *Driver) Compact(revision int64) error {
	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	switch {
	case revision > d.data.revision:
		return fmt.Errorf("%w: %d > %d", ErrFutureRevision, revision, d.data.revision)
	case revision <= d.data.compacted:
		return fmt.Errorf("%w: %d", ErrCompacted, revision)
	}

	for key, history := range d.data.history {
		// Keep the newest entry at or below revision, it is still visible there.
		keep := 0
		for i, entry := range history {
			if entry.kv.ModRevision <= revision {
				keep = i
			}
		}

		history = history[keep:]
		if len(history) == 1 && history[0].tombstone {
			delete(d.data.history, key)
			continue
		}

		d.data.history[key] = history
	}

	d.data.compacted = revision

	return nil
}

// evaluate runs query against the snapshot at its revision, or at latest
// when the query is not pinned.
func (d *Driver) evaluate(query rangequery.Query, latest int64) (rangeeval.Page, error) {
	revision := query.Revision()

	switch {
	case revision == 0:
		revision = latest
	case revision > latest:
		return rangeeval.Page{}, fmt.Errorf("%w: %d > %d", ErrFutureRevision, revision, latest)
	case revision < d.data.compacted:
		return rangeeval.Page{}, fmt.Errorf("%w: %d < %d", ErrCompacted, revision, d.data.compacted)
	}

	return rangeeval.Evaluate(query, d.snapshot(revision)), nil
}

// snapshot returns the live pairs at revision.
func (d *Driver) snapshot(revision int64) []kv.KeyValue {
	values := make([]kv.KeyValue, 0, len(d.data.history))

	for _, history := range d.data.history {
		if entry, ok := visibleAt(history, revision); ok {
			values = append(values, entry)
		}
	}

	return values
}

func visibleAt(history []revisionedValue, revision int64) (kv.KeyValue, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].kv.ModRevision <= revision {
			return history[i].kv, !history[i].tombstone
		}
	}

	return kv.KeyValue{}, false
}

func (d *Driver) latest(key string) (kv.KeyValue, bool) {
	history := d.data.history[key]
	if len(history) == 0 || history[len(history)-1].tombstone {
		return kv.KeyValue{}, false
	}

	return history[len(history)-1].kv, true
}

func (d *Driver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	if err := ctx.Err(); err != nil {
		return tx.Response{}, fmt.Errorf("transaction canceled: %w", err)
	}

	// We use a mutex to ensure that the execution of
	// operations is atomic and thread-safe.
	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	ops := elseOps

	success := d.checkPredicates(predicates)
	if success {
		ops = thenOps
	}

	err := d.validateOps(ops)
	if err != nil {
		return tx.Response{}, err
	}

	opsResults := d.executeOps(ops)

	return tx.Response{
		Header:    d.header(),
		Succeeded: success,
		Results:   opsResults,
	}, nil
}

func (d *Driver) Watch(ctx context.Context, key []byte, opts ...watch.Option) (<-chan watch.Event, func(), error) {
	ch, cancel := d.addWatcher(ctx, watchKey{
		key:    string(key),
		prefix: watch.Apply(opts).Prefix || isPrefix(string(key)),
	})

	return ch, cancel, nil
}

func (d *Driver) put(key string, value []byte, revision int64) {
	entry := kv.KeyValue{
		Key:            []byte(key),
		Value:          value,
		CreateRevision: revision,
		ModRevision:    revision,
		Version:        1,
		Lease:          0,
	}

	if prev, ok := d.latest(key); ok {
		entry.CreateRevision = prev.CreateRevision
		entry.Version = prev.Version + 1
	}

	d.appendHistory(key, revisionedValue{kv: entry, tombstone: false})
	d.notifyWatchers(key, revision)
}

func (d *Driver) delete(key string, revision int64) (kv.KeyValue, bool) {
	prevKv, ok := d.latest(key)
	if !ok {
		return kv.KeyValue{}, false
	}

	d.appendHistory(key, revisionedValue{
		kv:        kv.KeyValue{Key: []byte(key), ModRevision: revision}, //nolint:exhaustruct
		tombstone: true,
	})
	d.notifyWatchers(key, revision)

	return prevKv, true
}

// appendHistory adds entry, replacing an entry of the same revision
// written earlier in the same transaction.
func (d *Driver) appendHistory(key string, entry revisionedValue) {
	history := d.data.history[key]
	if n := len(history); n > 0 && history[n-1].kv.ModRevision == entry.kv.ModRevision {
		if !history[n-1].tombstone && !entry.tombstone {
			entry.kv.CreateRevision = history[n-1].kv.CreateRevision
		}

		history = history[:n-1]
	}

	d.data.history[key] = append(history, entry)
}

func isPrefix(str string) bool {
	return str == "" || str[len(str)-1] == '/'
}

// checkPredicates checks if the given predicates are satisfied by
// the current state of the storage.
func (d *Driver) checkPredicates(predicates []predicate.Predicate) bool {
	for _, pred := range predicates {
		val, exists := d.latest(string(pred.Key()))

		switch pred.Target() {
		case predicate.TargetVersion:
			version, ok := pred.Value().(int64)
			if !ok {
				return false
			}

			switch pred.Operation() {
			case predicate.OpEqual:
				if !exists || val.ModRevision != version {
					return false
				}
			case predicate.OpNotEqual:
				if exists && val.ModRevision == version {
					return false
				}
			case predicate.OpGreater:
				if !exists || val.ModRevision <= version {
					return false
				}
			case predicate.OpLess:
				if !exists || val.ModRevision >= version {
					return false
				}
			default:
				return false
			}
		case predicate.TargetValue:
			var value []byte

			switch v := pred.Value().(type) {
			case []byte:
				value = v
			case string:
				value = []byte(v)
			default:
				return false
			}

			switch pred.Operation() { //nolint:exhaustive
			case predicate.OpEqual:
				if !exists || !bytes.Equal(val.Value, value) {
					return false
				}
			case predicate.OpNotEqual:
				if exists && bytes.Equal(val.Value, value) {
					return false
				}
			default:
				return false
			}
		default:
			return false
		}
	}

	return true
}

// validateOps rejects the whole transaction before anything is applied.
func (d *Driver) validateOps(ops []operation.Operation) error {
	for _, eop := range ops {
		if eop.Type() != operation.TypeRange {
			continue
		}

		query := eop.Query()

		if err := query.Validate(); err != nil {
			return err
		}

		switch revision := query.Revision(); {
		case revision > d.data.revision:
			return fmt.Errorf("%w: %d > %d", ErrFutureRevision, revision, d.data.revision)
		case revision > 0 && revision < d.data.compacted:
			return fmt.Errorf("%w: %d < %d", ErrCompacted, revision, d.data.compacted)
		}
	}

	return nil
}

func (d *Driver) getAllByPrefix(prefix string) []kv.KeyValue {
	var prefixValues []kv.KeyValue

	for k := range d.data.history {
		if !strings.HasPrefix(k, prefix) {
			continue
		}

		if v, ok := d.latest(k); ok {
			prefixValues = append(prefixValues, v)
		}
	}

	sort.Slice(prefixValues, func(i, j int) bool {
		return bytes.Compare(prefixValues[i].Key, prefixValues[j].Key) < 0
	})

	return prefixValues
}

func (d *Driver) executeOps(ops []operation.Operation) []tx.RequestResponse {
	result := make([]tx.RequestResponse, 0, len(ops))
	mutable := false
	// All writes of a transaction share one revision.
	revision := d.data.revision + 1

	for _, eop := range ops {
		switch eop.Type() {
		case operation.TypePut:
			d.put(string(eop.Key()), eop.Value(), revision)

			mutable = true

			result = append(result, tx.RequestResponse{}) //nolint:exhaustruct
		case operation.TypeDelete:
			var values []kv.KeyValue

			if eop.IsPrefix() || isPrefix(string(eop.Key())) {
				prefixValues := d.getAllByPrefix(string(eop.Key()))
				for _, pv := range prefixValues {
					d.delete(string(pv.Key), revision)
				}

				values = prefixValues
				if len(prefixValues) > 0 {
					mutable = true
				}
			} else {
				val, ok := d.delete(string(eop.Key()), revision)
				if ok {
					values = []kv.KeyValue{val}
					mutable = true
				}
			}

			result = append(result, tx.RequestResponse{
				Values: values,
				More:   false,
				Count:  int64(len(values)),
			})
		case operation.TypeGet, operation.TypeRange:
			query := eop.Query()
			if eop.Type() == operation.TypeGet && isPrefix(string(eop.Key())) {
				query = rangequery.New(keyrange.Prefix(eop.Key()))
			}

			// Reads observe the writes made earlier in this transaction.
			readRevision := d.data.revision
			if mutable {
				readRevision = revision
			}

			page := rangeeval.Evaluate(query, d.snapshot(pinned(query, readRevision)))

			result = append(result, tx.RequestResponse{
				Values: page.KVs,
				More:   page.More,
				Count:  page.Count,
			})
		}
	}

	if mutable {
		d.data.revision = revision
	}

	return result
}

func pinned(query rangequery.Query, latest int64) int64 {
	if query.Revision() > 0 {
		return query.Revision()
	}

	return latest
}

func (d *Driver) addWatcher(ctx context.Context, key watchKey) (chan watch.Event, func()) {
	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	if _, exists := d.data.watchChanStorage[key]; !exists {
		d.data.watchChanStorage[key] = watcherPrefix{
			id:    0,
			chans: make(map[uint64]chan watch.Event),
		}
	}

	watcher := d.data.watchChanStorage[key]
	watcher.id++

	wid := watcher.id
	wch := make(chan watch.Event, eventChannelSize)

	watcher.chans[wid] = wch
	d.data.watchChanStorage[key] = watcher

	var (
		isStoppedOnce = sync.Once{}
		isStopped     = make(chan struct{})
	)

	go func() {
		defer func() {
			d.data.mu.Lock()
			defer d.data.mu.Unlock()

			delete(d.data.watchChanStorage[key].chans, wid)
			close(wch)
		}()

		select {
		case <-ctx.Done():
		case <-isStopped:
		}
	}()

	return wch, func() { isStoppedOnce.Do(func() { close(isStopped) }) }
}

// notifyWatchers sends a watch event to all watchers
// whose prefix matches the given key.
func (d *Driver) notifyWatchers(key string, revision int64) {
	for wkey, watchers := range d.data.watchChanStorage {
		if wkey.prefix && strings.HasPrefix(key, wkey.key) || key == wkey.key {
			for _, ch := range watchers.chans {
				select {
				case ch <- watch.Event{
					Prefix:   []byte(wkey.key),
					Revision: revision,
				}:
				default:
				}
			}
		}
	}
}
