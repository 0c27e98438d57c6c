// Package kv provides key-value data structures and interfaces for storage operations.
// It defines the core KeyValue type used throughout the storage system.
package kv

import (
	"errors"

	"go.etcd.io/etcd/api/v3/mvccpb"
)

var (
	// ErrNilEntry is returned when a reply contains an absent key-value entry.
	ErrNilEntry = errors.New("entry is nil")
	// ErrEmptyKey is returned when a reply contains an entry without a key.
	ErrEmptyKey = errors.New("entry key is empty")
)

// KeyValue is an immutable snapshot of a stored entry as of some revision.
type KeyValue struct {
	// Key is the serialized representation of the key.
	Key []byte
	// Value is the serialized representation of the value.
	// It is empty when the entry was fetched in keys-only mode.
	Value []byte

	// CreateRevision is the revision of the last creation of this key.
	CreateRevision int64
	// ModRevision is the revision number of the last modification to this key.
	ModRevision int64
	// Version is the number of modifications since the key was created.
	// A deletion resets it to zero.
	Version int64
	// Lease is the ID of the lease attached to the key, 0 if none.
	Lease int64
}

// FromProto converts a wire entry.
func FromProto(pb *mvccpb.KeyValue) (KeyValue, error) {
	switch {
	case pb == nil:
		return KeyValue{}, ErrNilEntry
	case len(pb.Key) == 0:
		return KeyValue{}, ErrEmptyKey
	}

	return KeyValue{
		Key:            pb.Key,
		Value:          pb.Value,
		CreateRevision: pb.CreateRevision,
		ModRevision:    pb.ModRevision,
		Version:        pb.Version,
		Lease:          pb.Lease,
	}, nil
}
