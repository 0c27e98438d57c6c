// Package etcd_test provides integration tests for the etcd driver.
// These tests require a running etcd instance and test full functionality.
//
// Due to inability to start multiple LazyClusters - we're using one LazyCluster
// and won't start tests in parallel here.
//
//nolint:paralleltest
package etcd_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	etcdclient "go.etcd.io/etcd/client/v3"
	etcdfintegration "go.etcd.io/etcd/tests/v3/framework/integration"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	etcddriver "github.com/tarantool/go-kvrange/driver/etcd"
	"github.com/tarantool/go-kvrange/internal/testing/etcd"
	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/kv"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
	"github.com/tarantool/go-kvrange/watch"
)

const (
	defaultWaitTimeout = 5 * time.Second
	testDialTimeout    = 5 * time.Second
)

// createTestDriver creates an etcd driver for testing using the integration framework.
// Returns driver and cleanup function for simple test scenarios.
func createTestDriver(t *testing.T) (*etcddriver.Driver, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	etcdfintegration.BeforeTest(etcd.NewSilentTB(t), etcdfintegration.WithoutGoLeakDetection())

	cluster := etcd.NewLazyCluster()

	t.Cleanup(func() { cluster.Terminate() })

	endpoints := cluster.EndpointsGRPC()

	client, err := etcdclient.New(etcdclient.Config{
		Endpoints:   endpoints,
		DialTimeout: testDialTimeout,

		AutoSyncInterval:      0,
		DialKeepAliveTime:     0,
		DialKeepAliveTimeout:  0,
		MaxCallSendMsgSize:    0,
		MaxCallRecvMsgSize:    0,
		TLS:                   nil,
		Username:              "",
		Password:              "",
		RejectOldCluster:      false,
		DialOptions:           nil,
		Context:               nil,
		Logger:                nil,
		LogConfig:             nil,
		PermitWithoutStream:   false,
		MaxUnaryRetries:       0,
		BackoffWaitBetween:    0,
		BackoffJitterFraction: 0,
	})
	require.NoError(t, err, "Failed to create etcd client")
	t.Cleanup(func() { _ = client.Close() })

	driver := etcddriver.New(client, etcddriver.WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel))))

	return driver, func() {}
}

// testKey generates a unique test key to avoid conflicts between tests.
func testKey(t *testing.T, prefix string) []byte {
	t.Helper()

	return []byte("/" + t.Name() + "/" + prefix)
}

func testNestedKey(t *testing.T, prefix, suffix string) []byte {
	t.Helper()

	return []byte("/" + strings.Join([]string{t.Name(), prefix, suffix}, "/"))
}

// putValue is a helper that puts a key-value pair and fails the test on error.
func putValue(ctx context.Context, t *testing.T, driver *etcddriver.Driver, key, value []byte) {
	t.Helper()

	response, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(key, value),
	}, nil)
	require.NoError(t, err, "Put operation failed")
	assert.True(t, response.Succeeded, "Put operation should succeed")
}

// getValue is a helper that gets a value and returns the key-value pair.
func getValue(ctx context.Context, t *testing.T, driver *etcddriver.Driver, key []byte) kv.KeyValue {
	t.Helper()

	response, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Get(key),
	}, nil)
	require.NoError(t, err, "Get operation failed")
	assert.True(t, response.Succeeded, "Get operation should succeed")
	require.Len(t, response.Results, 1, "Get operation should return one result")
	require.Len(t, response.Results[0].Values, 1, "Get operation should return one value")

	return response.Results[0].Values[0]
}

// deleteValue is a helper that deletes a key and returns the deleted key-value pair.
func deleteValue(ctx context.Context, t *testing.T, driver *etcddriver.Driver, key []byte) kv.KeyValue {
	t.Helper()

	response, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Delete(key),
	}, nil)

	require.NoError(t, err, "Delete operation failed")
	assert.True(t, response.Succeeded, "Delete operation should succeed")
	require.Len(t, response.Results, 1, "Delete operation should return one result")
	require.Len(t, response.Results[0].Values, 1, "Delete operation should return one value")

	return response.Results[0].Values[0]
}

func TestEtcdDriver_PutGetDelete(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	key := testKey(t, "key")

	putValue(ctx, t, driver, key, []byte("v1"))
	created := getValue(ctx, t, driver, key)

	putValue(ctx, t, driver, key, []byte("v2"))
	updated := getValue(ctx, t, driver, key)

	assert.Equal(t, key, updated.Key)
	assert.Equal(t, []byte("v2"), updated.Value)
	assert.Equal(t, created.CreateRevision, updated.CreateRevision)
	assert.Greater(t, updated.ModRevision, created.ModRevision)
	assert.Equal(t, int64(2), updated.Version)

	deleted := deleteValue(ctx, t, driver, key)
	assert.Equal(t, []byte("v2"), deleted.Value, "delete returns the previous pair")

	response, err := driver.Execute(ctx, nil, []operation.Operation{operation.Get(key)}, nil)
	require.NoError(t, err)
	assert.Empty(t, response.Results[0].Values)
	assert.Zero(t, response.Results[0].Count)
}

func TestEtcdDriver_Prefix(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	dir := append(testKey(t, "dir"), '/')

	putValue(ctx, t, driver, testNestedKey(t, "dir", "a"), []byte("1"))
	putValue(ctx, t, driver, testNestedKey(t, "dir", "b"), []byte("2"))
	putValue(ctx, t, driver, testKey(t, "dir-sibling"), []byte("3"))

	response, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Get(dir, operation.WithPrefix()),
	}, nil)
	require.NoError(t, err)
	require.Len(t, response.Results[0].Values, 2)
	assert.Equal(t, int64(2), response.Results[0].Count)

	response, err = driver.Execute(ctx, nil, []operation.Operation{
		operation.Delete(dir, operation.WithPrefix()),
		operation.Get(dir, operation.WithPrefix()),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), response.Results[0].Count)
	assert.Len(t, response.Results[0].Values, 2)
	assert.Empty(t, response.Results[1].Values)

	getValue(ctx, t, driver, testKey(t, "dir-sibling"))
}

func TestEtcdDriver_Predicates(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	key := testKey(t, "guarded")
	putValue(ctx, t, driver, key, []byte("initial"))
	revision := getValue(ctx, t, driver, key).ModRevision

	tests := []struct {
		name      string
		predicate predicate.Predicate
		succeeded bool
	}{
		{"value equal bytes", predicate.ValueEqual(key, []byte("initial")), true},
		{"value equal string", predicate.ValueEqual(key, "initial"), true},
		{"value equal mismatch", predicate.ValueEqual(key, "other"), false},
		{"value not equal", predicate.ValueNotEqual(key, "other"), true},
		{"version equal", predicate.VersionEqual(key, revision), true},
		{"version not equal", predicate.VersionNotEqual(key, revision), false},
		{"version greater", predicate.VersionGreater(key, revision-1), true},
		{"version less", predicate.VersionLess(key, revision), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := driver.Execute(ctx, []predicate.Predicate{tt.predicate},
				[]operation.Operation{operation.Get(key)},
				[]operation.Operation{operation.Get(key), operation.Get(key)})
			require.NoError(t, err)
			assert.Equal(t, tt.succeeded, response.Succeeded)

			if tt.succeeded {
				assert.Len(t, response.Results, 1)
			} else {
				assert.Len(t, response.Results, 2)
			}
		})
	}

	_, err := driver.Execute(ctx, []predicate.Predicate{predicate.ValueEqual(key, 1)}, nil, nil)
	require.Error(t, err)
}

func TestEtcdDriver_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	key := testKey(t, "canceled")

	_, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(key, []byte("value")),
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))

	_, err = driver.Range(ctx, rangequery.New(keyrange.Single(key)))
	require.Error(t, err)
}

func receiveEvent(t *testing.T, events <-chan watch.Event) watch.Event {
	t.Helper()

	select {
	case event, ok := <-events:
		require.True(t, ok, "event channel closed unexpectedly")

		return event
	case <-time.After(defaultWaitTimeout):
		t.Fatal("expected watch event but timed out")
	}

	return watch.Event{} //nolint:exhaustruct
}

func TestEtcdDriver_Watch(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	tests := []struct {
		name    string
		watched []byte
		opts    []watch.Option
		written []byte
	}{
		{"single key", testKey(t, "single"), nil, testKey(t, "single")},
		{"trailing slash", append(testKey(t, "dir"), '/'), nil, testNestedKey(t, "dir", "key")},
		{"prefix option", testKey(t, "pre"), []watch.Option{watch.WithPrefix()}, testKey(t, "prefixed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, stop, err := driver.Watch(ctx, tt.watched, tt.opts...)
			require.NoError(t, err)

			defer stop()

			putValue(ctx, t, driver, tt.written, []byte("value"))
			written := getValue(ctx, t, driver, tt.written)

			event := receiveEvent(t, events)
			assert.Equal(t, tt.watched, event.Prefix)
			assert.Equal(t, written.ModRevision, event.Revision)

			deleteValue(ctx, t, driver, tt.written)

			event = receiveEvent(t, events)
			assert.Greater(t, event.Revision, written.ModRevision)
		})
	}
}

func TestEtcdDriver_Watch_Stop(t *testing.T) {
	driver, cleanup := createTestDriver(t)
	defer cleanup()

	key := testKey(t, "stopped")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	byContext, stop, err := driver.Watch(timeoutCtx, key)
	require.NoError(t, err)

	defer stop()

	byStop, stopNow, err := driver.Watch(context.Background(), key)
	require.NoError(t, err)

	stopNow()

	for _, events := range []<-chan watch.Event{byContext, byStop} {
		select {
		case _, ok := <-events:
			assert.False(t, ok, "event channel is closed")
		case <-time.After(defaultWaitTimeout):
			assert.Fail(t, "event channel was not closed")
		}
	}
}

func TestEtcdDriver_Range_Prefix(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	prefix := append(testKey(t, "range"), '/')

	putValue(ctx, t, driver, testNestedKey(t, "range", "a"), []byte("1"))
	putValue(ctx, t, driver, testNestedKey(t, "range", "b"), []byte("2"))
	putValue(ctx, t, driver, testNestedKey(t, "range", "c"), []byte("3"))
	putValue(ctx, t, driver, testKey(t, "rangf"), []byte("outside"))

	result, err := driver.Range(ctx, rangequery.New(keyrange.Prefix(prefix)))
	require.NoError(t, err)

	require.Len(t, result.KVs, 3)
	assert.Equal(t, testNestedKey(t, "range", "a"), result.KVs[0].Key)
	assert.Equal(t, []byte("3"), result.KVs[2].Value)
	assert.False(t, result.More)
	assert.Equal(t, uint64(3), result.Count)
	assert.Positive(t, result.Header.Revision)
	assert.NotZero(t, result.Header.ClusterID)
	assert.NotZero(t, result.Header.MemberID)
}

func TestEtcdDriver_Range_LimitAndMore(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	prefix := append(testKey(t, "limit"), '/')

	for _, name := range []string{"k1", "k2", "k3", "k4", "k5"} {
		putValue(ctx, t, driver, testNestedKey(t, "limit", name), []byte(name))
	}

	result, err := driver.Range(ctx, rangequery.New(keyrange.Prefix(prefix)).WithLimit(3))
	require.NoError(t, err)

	assert.Len(t, result.KVs, 3)
	assert.True(t, result.More)
	assert.Equal(t, uint64(5), result.Count)
}

func TestEtcdDriver_Range_Pagination(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	prefix := append(testKey(t, "pages"), '/')

	expected := make([][]byte, 0, 5)
	for _, name := range []string{"p1", "p2", "p3", "p4", "p5"} {
		key := testNestedKey(t, "pages", name)
		expected = append(expected, key)
		putValue(ctx, t, driver, key, []byte(name))
	}

	query := rangequery.New(keyrange.Prefix(prefix)).WithLimit(2)

	var (
		seen  [][]byte
		pages int
	)

	for {
		result, err := driver.Range(ctx, query)
		require.NoError(t, err)

		for _, kv := range result.KVs {
			seen = append(seen, kv.Key)
		}

		pages++

		next, ok := query.NextPage(result)
		if !ok {
			break
		}

		// A write between pages must not leak into the pinned snapshot.
		putValue(ctx, t, driver, testNestedKey(t, "pages", "p9"), []byte("late"))

		query = next
	}

	assert.Equal(t, expected, seen)
	assert.Equal(t, 3, pages)
}

func TestEtcdDriver_Range_HistoricalRevision(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	key := testKey(t, "history")

	putValue(ctx, t, driver, key, []byte("v1"))
	first := getValue(ctx, t, driver, key)
	putValue(ctx, t, driver, key, []byte("v2"))

	result, err := driver.Range(ctx, rangequery.New(keyrange.Single(key)).WithRevision(first.ModRevision))
	require.NoError(t, err)

	require.Len(t, result.KVs, 1)
	assert.Equal(t, []byte("v1"), result.KVs[0].Value)
	assert.Equal(t, int64(1), result.KVs[0].Version)
}

func TestEtcdDriver_Range_SortAndFilters(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	prefix := append(testKey(t, "sorted"), '/')

	putValue(ctx, t, driver, testNestedKey(t, "sorted", "a"), []byte("zz"))
	putValue(ctx, t, driver, testNestedKey(t, "sorted", "b"), []byte("aa"))
	putValue(ctx, t, driver, testNestedKey(t, "sorted", "c"), []byte("mm"))

	result, err := driver.Range(ctx, rangequery.New(keyrange.Prefix(prefix)).
		SortBy(rangequery.SortByValue, rangequery.Ascending))
	require.NoError(t, err)
	require.Len(t, result.KVs, 3)
	assert.Equal(t, []byte("aa"), result.KVs[0].Value)
	assert.Equal(t, []byte("zz"), result.KVs[2].Value)

	// Sorted by value, "aa" is key b, the second key written.
	second := result.KVs[0].ModRevision

	filtered, err := driver.Range(ctx, rangequery.New(keyrange.Prefix(prefix)).
		WithMinModRevision(second).
		KeysOnly())
	require.NoError(t, err)
	require.Len(t, filtered.KVs, 2)
	assert.Equal(t, testNestedKey(t, "sorted", "b"), filtered.KVs[0].Key)
	assert.Equal(t, testNestedKey(t, "sorted", "c"), filtered.KVs[1].Key)
	assert.Empty(t, filtered.KVs[0].Value)
	assert.Equal(t, uint64(3), filtered.Count, "count ignores revision filters")
}

func TestEtcdDriver_Range_CountOnly(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	prefix := append(testKey(t, "count"), '/')

	putValue(ctx, t, driver, testNestedKey(t, "count", "x"), []byte("1"))
	putValue(ctx, t, driver, testNestedKey(t, "count", "y"), []byte("2"))

	result, err := driver.Range(ctx, rangequery.New(keyrange.Prefix(prefix)).CountOnly())
	require.NoError(t, err)

	assert.Empty(t, result.KVs)
	assert.Equal(t, uint64(2), result.Count)
}

func TestEtcdDriver_Range_InTransaction(t *testing.T) {
	ctx := context.Background()

	driver, cleanup := createTestDriver(t)
	defer cleanup()

	prefix := append(testKey(t, "txn"), '/')

	putValue(ctx, t, driver, testNestedKey(t, "txn", "a"), []byte("1"))
	putValue(ctx, t, driver, testNestedKey(t, "txn", "b"), []byte("2"))

	response, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Range(rangequery.New(keyrange.Prefix(prefix)).WithLimit(1)),
	}, nil)
	require.NoError(t, err)

	assert.True(t, response.Succeeded)
	assert.Positive(t, response.Header.Revision)
	require.Len(t, response.Results, 1)
	assert.Len(t, response.Results[0].Values, 1)
	assert.True(t, response.Results[0].More)
	assert.Equal(t, int64(2), response.Results[0].Count)
}
