package rangequery

import (
	"bytes"

	"github.com/tarantool/go-kvrange/keyrange"
)

// NextPage returns the query fetching the pairs that follow res.
// It reports false when res is the last page or when the query is not in
// natural key order, since only then the last returned key bounds the page.
// The returned query is pinned to the revision of res so that all pages
// observe the same snapshot.
func (q Query) NextPage(res Result) (Query, bool) {
	if !res.More || q.countOnly || len(res.KVs) == 0 || !q.sort.IsNatural() {
		return q, false
	}

	last := res.KVs[len(res.KVs)-1].Key

	next := q
	next.keyRange = keyrange.KeyRange{
		Key:      append(bytes.Clone(last), 0),
		RangeEnd: q.keyRange.RangeEnd,
	}

	if next.revision == 0 {
		next.revision = res.Header.Revision
	}

	return next, true
}
