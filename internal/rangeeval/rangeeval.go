// Package rangeeval evaluates a range query over an in-memory snapshot.
// It is used by drivers whose backend has no server-side range support,
// and reproduces the server's filtering, sorting and truncation rules.
package rangeeval

import (
	"bytes"
	"cmp"
	"slices"

	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/kv"
	"github.com/tarantool/go-kvrange/rangequery"
)

// Page is the query-shaped part of a reply.
type Page struct {
	KVs   []kv.KeyValue
	More  bool
	Count int64
}

// Contains reports whether key belongs to the interval.
func Contains(r keyrange.KeyRange, key []byte) bool {
	switch {
	case r.IsSingle():
		return bytes.Equal(r.Key, key)
	case bytes.Compare(key, r.Key) < 0:
		return false
	case bytes.Equal(r.RangeEnd, []byte{0}):
		return true
	default:
		return bytes.Compare(key, r.RangeEnd) < 0
	}
}

// Evaluate applies q to snapshot, the set of live pairs at the query revision.
// The snapshot itself is not modified.
//
// Count covers every pair in the interval. Revision bounds only prune the
// returned pairs, so Count may exceed the number of pairs that pass them.
func Evaluate(q rangequery.Query, snapshot []kv.KeyValue) Page {
	var count int64

	kvs := make([]kv.KeyValue, 0, len(snapshot))

	for _, entry := range snapshot {
		if !Contains(q.KeyRange(), entry.Key) {
			continue
		}

		count++

		if matchRevisions(q, entry) {
			kvs = append(kvs, entry)
		}
	}

	if q.IsCountOnly() {
		return Page{KVs: nil, More: false, Count: count}
	}

	slices.SortFunc(kvs, func(a, b kv.KeyValue) int {
		return bytes.Compare(a.Key, b.Key)
	})

	sortKVs(q.Sort(), kvs)

	more := false
	if limit := q.Limit(); limit > 0 && int64(len(kvs)) > limit {
		kvs = kvs[:limit]
		more = true
	}

	if q.IsKeysOnly() {
		for i := range kvs {
			kvs[i].Value = nil
		}
	}

	return Page{KVs: kvs, More: more, Count: count}
}

func matchRevisions(q rangequery.Query, entry kv.KeyValue) bool {
	minMod, maxMod := q.ModRevisionBounds()
	minCreate, maxCreate := q.CreateRevisionBounds()

	switch {
	case minMod > 0 && entry.ModRevision < minMod:
		return false
	case maxMod > 0 && entry.ModRevision > maxMod:
		return false
	case minCreate > 0 && entry.CreateRevision < minCreate:
		return false
	case maxCreate > 0 && entry.CreateRevision > maxCreate:
		return false
	default:
		return true
	}
}

// sortKVs orders kvs, already sorted by key, by the requested policy.
// Ties keep key order.
func sortKVs(policy rangequery.Sort, kvs []kv.KeyValue) {
	target, order := policy.Wire()

	if order == etcdserverpb.RangeRequest_NONE {
		return
	}

	var compare func(a, b kv.KeyValue) int

	switch target {
	case etcdserverpb.RangeRequest_KEY:
		compare = func(a, b kv.KeyValue) int { return bytes.Compare(a.Key, b.Key) }
	case etcdserverpb.RangeRequest_VERSION:
		compare = func(a, b kv.KeyValue) int { return cmp.Compare(a.Version, b.Version) }
	case etcdserverpb.RangeRequest_CREATE:
		compare = func(a, b kv.KeyValue) int { return cmp.Compare(a.CreateRevision, b.CreateRevision) }
	case etcdserverpb.RangeRequest_MOD:
		compare = func(a, b kv.KeyValue) int { return cmp.Compare(a.ModRevision, b.ModRevision) }
	case etcdserverpb.RangeRequest_VALUE:
		compare = func(a, b kv.KeyValue) int { return bytes.Compare(a.Value, b.Value) }
	default:
		return
	}

	if order == etcdserverpb.RangeRequest_DESCEND {
		slices.SortStableFunc(kvs, func(a, b kv.KeyValue) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(kvs, compare)
	}
}
