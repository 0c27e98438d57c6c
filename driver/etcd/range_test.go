package etcd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tarantool/go-kvrange/driver/etcd"
	"github.com/tarantool/go-kvrange/internal/mocks"
	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/rangequery"
)

var errUnavailable = errors.New("unavailable")

func testHeader() *etcdserverpb.ResponseHeader {
	return &etcdserverpb.ResponseHeader{ //nolint:exhaustruct
		ClusterId: 11,
		MemberId:  22,
		Revision:  33,
		RaftTerm:  44,
	}
}

func TestDriver_Range(t *testing.T) {
	t.Parallel()

	query := rangequery.New(keyrange.Prefix([]byte("/"))).
		WithLimit(2).
		WithRevision(30).
		SortBy(rangequery.SortByModRevision, rangequery.Descending)

	mc := minimock.NewController(t)
	clientMock := mocks.NewRangeClientMock(mc)
	clientMock.RangeMock.ExpectInParam2(query.Proto()).Times(1).Return(&etcdserverpb.RangeResponse{ //nolint:exhaustruct
		Header: testHeader(),
		Kvs: []*mvccpb.KeyValue{
			{Key: []byte("/a"), Value: []byte("1"), CreateRevision: 2, ModRevision: 3, Version: 2}, //nolint:exhaustruct
			{Key: []byte("/b"), Value: []byte("2"), CreateRevision: 4, ModRevision: 4, Version: 1}, //nolint:exhaustruct
		},
		More:  true,
		Count: 5,
	}, nil)

	driver := etcd.NewWithClients(nil, clientMock)

	result, err := driver.Range(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, int64(33), result.Header.Revision)
	assert.Equal(t, uint64(11), result.Header.ClusterID)
	require.Len(t, result.KVs, 2)
	assert.Equal(t, []byte("/b"), result.KVs[1].Key)
	assert.Equal(t, int64(2), result.KVs[0].Version)
	assert.True(t, result.More)
	assert.Equal(t, uint64(5), result.Count)
}

func TestDriver_Range_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    rangequery.Query
		response *etcdserverpb.RangeResponse
		err      error
		sent     bool
		expected error
	}{
		{
			name:     "empty key",
			query:    rangequery.New(keyrange.Single(nil)),
			response: nil,
			err:      nil,
			sent:     false,
			expected: rangequery.ErrEmptyKey,
		},
		{
			name:     "transport failure",
			query:    rangequery.New(keyrange.Single([]byte("/a"))),
			response: nil,
			err:      errUnavailable,
			sent:     true,
			expected: errUnavailable,
		},
		{
			name:     "missing header",
			query:    rangequery.New(keyrange.Single([]byte("/a"))),
			response: &etcdserverpb.RangeResponse{}, //nolint:exhaustruct
			err:      nil,
			sent:     true,
			expected: rangequery.ErrMissingMetadata,
		},
		{
			name:  "malformed entry",
			query: rangequery.New(keyrange.Prefix([]byte("/"))),
			response: &etcdserverpb.RangeResponse{ //nolint:exhaustruct
				Header: testHeader(),
				Kvs:    []*mvccpb.KeyValue{{Key: []byte("/a")}, nil}, //nolint:exhaustruct
				Count:  2,
			},
			err:      nil,
			sent:     true,
			expected: rangequery.ErrMalformedEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			clientMock := mocks.NewRangeClientMock(mc)

			if tt.sent {
				clientMock.RangeMock.Times(1).Return(tt.response, tt.err)
			}

			driver := etcd.NewWithClients(nil, clientMock)

			_, err := driver.Range(context.Background(), tt.query)
			require.ErrorIs(t, err, tt.expected)

			if !tt.sent {
				assert.Zero(t, clientMock.RangeBeforeCounter())
			}
		})
	}
}

func TestDriver_Range_LogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)

	clientMock := mocks.NewRangeClientMock(minimock.NewController(t))
	clientMock.RangeMock.Return(nil, errUnavailable)

	driver := etcd.NewWithClients(nil, clientMock, etcd.WithLogger(zap.New(core)))

	_, err := driver.Range(context.Background(), rangequery.New(keyrange.Single([]byte("/a"))))
	require.Error(t, err)

	entries := logs.FilterMessage("range request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, `"/a"`, entries[0].ContextMap()["range"])
}
