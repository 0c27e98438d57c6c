package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/mvccpb"

	"github.com/tarantool/go-kvrange/kv"
)

func TestFromProto(t *testing.T) {
	t.Parallel()

	entry, err := kv.FromProto(&mvccpb.KeyValue{
		Key:            []byte("key"),
		Value:          []byte("value"),
		CreateRevision: 2,
		ModRevision:    5,
		Version:        3,
		Lease:          9,
	})
	require.NoError(t, err)

	assert.Equal(t, kv.KeyValue{
		Key:            []byte("key"),
		Value:          []byte("value"),
		CreateRevision: 2,
		ModRevision:    5,
		Version:        3,
		Lease:          9,
	}, entry)
}

func TestFromProto_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry *mvccpb.KeyValue
		err   error
	}{
		{"nil entry", nil, kv.ErrNilEntry},
		{"empty key", &mvccpb.KeyValue{Value: []byte("v")}, kv.ErrEmptyKey}, //nolint:exhaustruct
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := kv.FromProto(tt.entry)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
