// Package keyrange provides the key interval every range query operates over.
// An interval is either a single key or a half-open byte range [Key, RangeEnd).
package keyrange

import (
	"bytes"
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"
)

// KeyRange is a single key or a half-open interval of keys.
// Ordering is the store's lexicographic byte order.
type KeyRange struct {
	// Key is the first key of the interval. It must be non-empty.
	Key []byte
	// RangeEnd is the exclusive upper bound. Empty means single key lookup,
	// "\x00" means every key greater than or equal to Key.
	RangeEnd []byte
}

// Single returns an interval matching exactly one key.
func Single(key []byte) KeyRange {
	return KeyRange{
		Key:      bytes.Clone(key),
		RangeEnd: nil,
	}
}

// Between returns the half-open interval [from, to).
func Between(from, to []byte) KeyRange {
	return KeyRange{
		Key:      bytes.Clone(from),
		RangeEnd: bytes.Clone(to),
	}
}

// Prefix returns the interval of all keys starting with prefix.
// Empty prefix matches all keys.
func Prefix(prefix []byte) KeyRange {
	if len(prefix) == 0 {
		return All()
	}

	return KeyRange{
		Key:      bytes.Clone(prefix),
		RangeEnd: []byte(etcd.GetPrefixRangeEnd(string(prefix))),
	}
}

// FromKey returns the interval of all keys greater than or equal to key.
func FromKey(key []byte) KeyRange {
	return fromOp(etcd.OpGet(string(key), etcd.WithFromKey()))
}

// All returns the interval covering the whole keyspace.
func All() KeyRange {
	return fromOp(etcd.OpGet("", etcd.WithPrefix()))
}

func fromOp(op etcd.Op) KeyRange {
	return KeyRange{
		Key:      bytes.Clone(op.KeyBytes()),
		RangeEnd: bytes.Clone(op.RangeBytes()),
	}
}

// IsSingle reports whether the interval matches a single key.
func (r KeyRange) IsSingle() bool {
	return len(r.RangeEnd) == 0
}

// IsPrefix reports whether the interval is exactly the set of keys
// starting with r.Key.
func (r KeyRange) IsPrefix() bool {
	if r.IsSingle() || len(r.Key) == 0 {
		return false
	}

	return string(r.RangeEnd) == etcd.GetPrefixRangeEnd(string(r.Key))
}

func (r KeyRange) String() string {
	if r.IsSingle() {
		return fmt.Sprintf("%q", r.Key)
	}

	return fmt.Sprintf("[%q, %q)", r.Key, r.RangeEnd)
}
