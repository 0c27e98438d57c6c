// Package rangequery provides the range query model: an immutable query
// configuration with its builder methods, the sort policy, and the decoder
// that turns a raw reply into a validated Result.
//
// A Query is a value. Each configuration method returns an updated copy and
// never touches the receiver, so queries can be shared between goroutines
// and used as templates:
//
//	base := rangequery.New(keyrange.Prefix([]byte("/config/"))).WithLimit(100)
//	newest := base.SortBy(rangequery.SortByModRevision, rangequery.Descending)
package rangequery

import (
	"bytes"
	"math"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-kvrange/keyrange"
)

// Query is a range query configuration.
type Query struct {
	keyRange keyrange.KeyRange
	limit    int64
	revision int64
	sort     Sort

	serializable bool
	keysOnly     bool
	countOnly    bool

	minModRevision    int64
	maxModRevision    int64
	minCreateRevision int64
	maxCreateRevision int64
}

// New creates a query over the given interval with all options unset.
// The interval bounds are copied, the caller may reuse its buffers.
func New(r keyrange.KeyRange) Query {
	return Query{ //nolint:exhaustruct
		keyRange: keyrange.KeyRange{Key: bytes.Clone(r.Key), RangeEnd: bytes.Clone(r.RangeEnd)},
		sort:     Sort{Target: SortNone, Order: Ascending},
	}
}

// WithLimit sets the maximum number of pairs returned.
// Zero means no limit. Values above math.MaxInt64 saturate.
func (q Query) WithLimit(limit uint64) Query {
	if limit > math.MaxInt64 {
		limit = math.MaxInt64
	}

	q.limit = int64(limit)

	return q
}

// WithRevision pins the query to a historical revision.
// Revision less than or equal to zero means the latest revision at execution time.
func (q Query) WithRevision(revision int64) Query {
	q.revision = max(revision, 0)

	return q
}

// KeysOnly omits values from the returned pairs.
func (q Query) KeysOnly() Query {
	q.keysOnly = true

	return q
}

// CountOnly omits pairs entirely, only the count is returned.
func (q Query) CountOnly() Query {
	q.countOnly = true

	return q
}

// Serializable allows the query to be served by any member without
// linearizable consistency.
func (q Query) Serializable() Query {
	q.serializable = true

	return q
}

// WithMinModRevision drops pairs modified before revision. Zero means unbounded.
func (q Query) WithMinModRevision(revision int64) Query {
	q.minModRevision = revision

	return q
}

// WithMaxModRevision drops pairs modified after revision. Zero means unbounded.
func (q Query) WithMaxModRevision(revision int64) Query {
	q.maxModRevision = revision

	return q
}

// WithMinCreateRevision drops pairs created before revision. Zero means unbounded.
func (q Query) WithMinCreateRevision(revision int64) Query {
	q.minCreateRevision = revision

	return q
}

// WithMaxCreateRevision drops pairs created after revision. Zero means unbounded.
func (q Query) WithMaxCreateRevision(revision int64) Query {
	q.maxCreateRevision = revision

	return q
}

// SortBy sets sort target and order. A later call replaces the previous policy.
func (q Query) SortBy(target SortTarget, order SortOrder) Query {
	q.sort = Sort{Target: target, Order: order}

	return q
}

// KeyRange returns the interval of the query. The bounds are shared with
// the query and must not be modified.
func (q Query) KeyRange() keyrange.KeyRange { return q.keyRange }

// Limit returns the pair limit, 0 if unlimited.
func (q Query) Limit() int64 { return q.limit }

// Revision returns the pinned revision, 0 for the latest.
func (q Query) Revision() int64 { return q.revision }

// Sort returns the sort policy.
func (q Query) Sort() Sort { return q.sort }

// IsKeysOnly reports whether values are omitted.
func (q Query) IsKeysOnly() bool { return q.keysOnly }

// IsCountOnly reports whether pairs are omitted.
func (q Query) IsCountOnly() bool { return q.countOnly }

// IsSerializable reports whether a serializable read is requested.
func (q Query) IsSerializable() bool { return q.serializable }

// ModRevisionBounds returns the inclusive mod revision window, 0 meaning unbounded.
func (q Query) ModRevisionBounds() (int64, int64) { return q.minModRevision, q.maxModRevision }

// CreateRevisionBounds returns the inclusive create revision window, 0 meaning unbounded.
func (q Query) CreateRevisionBounds() (int64, int64) { return q.minCreateRevision, q.maxCreateRevision }

// Validate checks the query is fit to be sent. Builder methods never fail,
// so this is the only place configuration errors surface.
func (q Query) Validate() error {
	if len(q.keyRange.Key) == 0 {
		return ConfigurationError{Field: "key", Err: ErrEmptyKey}
	}

	return nil
}

// Proto finalizes the query into its wire request.
// Key and RangeEnd of the request share the query's buffers.
func (q Query) Proto() *etcdserverpb.RangeRequest {
	target, order := q.sort.Wire()

	return &etcdserverpb.RangeRequest{
		Key:               q.keyRange.Key,
		RangeEnd:          q.keyRange.RangeEnd,
		Limit:             q.limit,
		Revision:          q.revision,
		SortOrder:         order,
		SortTarget:        target,
		Serializable:      q.serializable,
		KeysOnly:          q.keysOnly,
		CountOnly:         q.countOnly,
		MinModRevision:    q.minModRevision,
		MaxModRevision:    q.maxModRevision,
		MinCreateRevision: q.minCreateRevision,
		MaxCreateRevision: q.maxCreateRevision,
	}
}

// OpOptions finalizes the query into etcd client options for the query key.
func (q Query) OpOptions() []etcd.OpOption {
	var opts []etcd.OpOption

	if !q.keyRange.IsSingle() {
		opts = append(opts, etcd.WithRange(string(q.keyRange.RangeEnd)))
	}

	if q.limit > 0 {
		opts = append(opts, etcd.WithLimit(q.limit))
	}

	if q.revision > 0 {
		opts = append(opts, etcd.WithRev(q.revision))
	}

	if target, order := q.sort.Wire(); order != etcdserverpb.RangeRequest_NONE {
		opts = append(opts, etcd.WithSort(etcd.SortTarget(target), etcd.SortOrder(order)))
	}

	if q.serializable {
		opts = append(opts, etcd.WithSerializable())
	}

	if q.keysOnly {
		opts = append(opts, etcd.WithKeysOnly())
	}

	if q.countOnly {
		opts = append(opts, etcd.WithCountOnly())
	}

	if q.minModRevision != 0 {
		opts = append(opts, etcd.WithMinModRev(q.minModRevision))
	}

	if q.maxModRevision != 0 {
		opts = append(opts, etcd.WithMaxModRev(q.maxModRevision))
	}

	if q.minCreateRevision != 0 {
		opts = append(opts, etcd.WithMinCreateRev(q.minCreateRevision))
	}

	if q.maxCreateRevision != 0 {
		opts = append(opts, etcd.WithMaxCreateRev(q.maxCreateRevision))
	}

	return opts
}

// Op finalizes the query into an etcd get operation, usable inside transactions.
func (q Query) Op() etcd.Op {
	return etcd.OpGet(string(q.keyRange.Key), q.OpOptions()...)
}
