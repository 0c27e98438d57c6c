package rangequery

import (
	"fmt"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"

	"github.com/tarantool/go-kvrange/header"
	"github.com/tarantool/go-kvrange/kv"
)

// Result is the decoded reply of a range query.
type Result struct {
	// Header is the metadata of the member that served the query.
	Header header.Header
	// KVs are the returned pairs, empty for count-only queries.
	KVs []kv.KeyValue
	// More is set when the query had a limit and more keys matched than were returned.
	More bool
	// Count is the number of keys matching the query before limit truncation.
	Count uint64
}

// Decode validates a raw reply and converts it into a Result.
// A reply without a header is rejected with ErrMissingMetadata; an invalid
// pair is rejected with a MalformedEntryError naming its position.
func Decode(resp *etcdserverpb.RangeResponse) (Result, error) {
	if resp == nil {
		return Result{}, newResponseDecodingError("", ErrMissingMetadata)
	}

	hdr, err := header.FromProto(resp.GetHeader())
	if err != nil {
		return Result{}, newResponseDecodingError("header", fmt.Errorf("%w: %w", ErrMissingMetadata, err))
	}

	if resp.GetCount() < 0 {
		return Result{}, newResponseDecodingError("count", fmt.Errorf("%w: %d", ErrInvalidCount, resp.GetCount()))
	}

	kvs, err := DecodeKVs(resp.GetKvs())
	if err != nil {
		return Result{}, newResponseDecodingError("kvs", err)
	}

	return Result{
		Header: hdr,
		KVs:    kvs,
		More:   resp.GetMore(),
		Count:  uint64(resp.GetCount()),
	}, nil
}

// DecodeKVs converts raw pairs one by one, keeping their order.
func DecodeKVs(raw []*mvccpb.KeyValue) ([]kv.KeyValue, error) {
	kvs := make([]kv.KeyValue, 0, len(raw))

	for i, rawKv := range raw {
		entry, err := kv.FromProto(rawKv)
		if err != nil {
			return nil, MalformedEntryError{Index: i, Err: err}
		}

		kvs = append(kvs, entry)
	}

	return kvs, nil
}
