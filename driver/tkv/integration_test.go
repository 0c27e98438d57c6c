package tkv_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-tarantool/v2"
	"github.com/tarantool/go-tarantool/v2/pool"

	"github.com/tarantool/go-kvrange/driver/tkv"
	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
)

// skipIfNoTarantool skips the test if no Tarantool instance is available.
func skipIfNoTarantool(t *testing.T) {
	t.Helper()

	if os.Getenv("TARANTOOL_ADDR") == "" {
		t.Skip("Skipping test: TARANTOOL_ADDR environment variable not set")
	}
}

// createTestDriver creates a TKV driver for testing.
// It skips the test if no Tarantool instance is available.
func createTestDriver(ctx context.Context, t *testing.T) *tkv.Driver {
	t.Helper()

	skipIfNoTarantool(t)

	addrs := []string{}

	// Parse comma-separated addresses.
	addr := os.Getenv("TARANTOOL_ADDR")
	if addr != "" {
		// Split by comma and trim spaces.
		for _, a := range strings.Split(addr, ",") {
			addrs = append(addrs, strings.TrimSpace(a))
		}
	}

	// Create connection pool.
	instances := make([]pool.Instance, 0, len(addrs))
	for i, addr := range addrs {
		instances = append(instances, pool.Instance{
			Name: string(rune('a' + i)),
			Dialer: &tarantool.NetDialer{
				Address:  addr,
				User:     "client",
				Password: "secret",
				RequiredProtocolInfo: tarantool.ProtocolInfo{
					Auth:     0,
					Version:  0,
					Features: nil,
				},
			},
			Opts: tarantool.Opts{
				Timeout:       0,
				Reconnect:     0,
				MaxReconnects: 0,
				RateLimit:     0,
				RLimitAction:  0,
				Concurrency:   0,
				SkipSchema:    false,
				Notify:        nil,
				Handle:        nil,
				Logger:        nil,
			},
		})
	}

	conn, err := pool.Connect(ctx, instances)
	require.NoError(t, err, "Failed to connect to Tarantool pool")

	// Wrap the pool connection to implement DoerWatcher.
	wrapper := pool.NewConnectorAdapter(conn, pool.RW)

	return tkv.New(wrapper)
}

// cleanupTestKey deletes a test key to ensure clean state.
func cleanupTestKey(ctx context.Context, driver *tkv.Driver, key []byte) {
	_, _ = driver.Execute(ctx, nil, []operation.Operation{
		operation.Delete(key),
	}, nil)
}

// testKey generates a unique test key to avoid conflicts between tests.
func testKey(t *testing.T, prefix string) []byte {
	t.Helper()

	return []byte("/test/" + prefix + "/" + t.Name())
}

// TestTKVDriver_PutGetDelete tests the basic write, read and delete cycle.
func TestTKVDriver_PutGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := createTestDriver(ctx, t)

	key := testKey(t, "cycle")
	defer cleanupTestKey(ctx, driver, key)

	value := []byte("cycle-value")

	response, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(key, value),
	}, nil)
	require.NoError(t, err)
	assert.True(t, response.Succeeded)
	assert.Positive(t, response.Header.Revision)

	response, err = driver.Execute(ctx, nil, []operation.Operation{
		operation.Get(key),
	}, nil)
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	require.Len(t, response.Results[0].Values, 1)
	assert.Equal(t, value, response.Results[0].Values[0].Value)

	response, err = driver.Execute(ctx, nil, []operation.Operation{
		operation.Delete(key),
	}, nil)
	require.NoError(t, err)
	require.Len(t, response.Results[0].Values, 1)
	assert.Equal(t, key, response.Results[0].Values[0].Key)
}

// TestTKVDriver_VersionEqualPredicate tests VersionEqual predicate against the stored mod revision.
func TestTKVDriver_VersionEqualPredicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := createTestDriver(ctx, t)

	key := testKey(t, "version-equal")
	defer cleanupTestKey(ctx, driver, key)

	_, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(key, []byte("v1")),
	}, nil)
	require.NoError(t, err)

	current, err := driver.Range(ctx, rangequery.New(keyrange.Single(key)))
	require.NoError(t, err)
	require.Len(t, current.KVs, 1)

	response, err := driver.Execute(ctx, []predicate.Predicate{
		predicate.VersionEqual(key, current.KVs[0].ModRevision),
	}, []operation.Operation{
		operation.Put(key, []byte("v2")),
	}, nil)
	require.NoError(t, err)
	assert.True(t, response.Succeeded, "Should succeed when version matches")
}

// TestTKVDriver_RangePrefix tests reading a prefix with client-side limit and sort.
func TestTKVDriver_RangePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := createTestDriver(ctx, t)

	basePrefix := "/test/range/" + t.Name() + "/"

	keys := make([][]byte, 0, 3)
	for _, name := range []string{"a", "b", "c"} {
		key := []byte(basePrefix + name)
		keys = append(keys, key)

		defer cleanupTestKey(ctx, driver, key)
	}

	_, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(keys[0], []byte("1")),
		operation.Put(keys[1], []byte("2")),
		operation.Put(keys[2], []byte("3")),
	}, nil)
	require.NoError(t, err)

	result, err := driver.Range(ctx, rangequery.New(keyrange.Prefix([]byte(basePrefix))).
		SortBy(rangequery.SortByKey, rangequery.Descending).
		WithLimit(2))
	require.NoError(t, err)

	require.Len(t, result.KVs, 2)
	assert.Equal(t, keys[2], result.KVs[0].Key)
	assert.Equal(t, keys[1], result.KVs[1].Key)
	assert.True(t, result.More)
	assert.Equal(t, uint64(3), result.Count)
	assert.Positive(t, result.Header.Revision)

	for _, kv := range result.KVs {
		assert.True(t, strings.HasPrefix(string(kv.Key), basePrefix))
	}
}

// TestTKVDriver_RangeInTransaction tests a count-only range inside a guarded transaction.
func TestTKVDriver_RangeInTransaction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := createTestDriver(ctx, t)

	basePrefix := "/test/range-txn/" + t.Name() + "/"
	key := []byte(basePrefix + "only")

	defer cleanupTestKey(ctx, driver, key)

	_, err := driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(key, []byte("value")),
	}, nil)
	require.NoError(t, err)

	response, err := driver.Execute(ctx, []predicate.Predicate{
		predicate.ValueEqual(key, "value"),
	}, []operation.Operation{
		operation.Range(rangequery.New(keyrange.Prefix([]byte(basePrefix))).CountOnly()),
	}, nil)
	require.NoError(t, err)
	require.True(t, response.Succeeded)
	require.Len(t, response.Results, 1)
	assert.Empty(t, response.Results[0].Values)
	assert.Equal(t, int64(1), response.Results[0].Count)
}

// TestTKVDriver_RangeUnsupported tests that arbitrary intervals are rejected before sending.
func TestTKVDriver_RangeUnsupported(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := createTestDriver(ctx, t)

	_, err := driver.Range(ctx, rangequery.New(keyrange.Between([]byte("/test/a"), []byte("/test/b"))))
	require.ErrorIs(t, err, tkv.ErrUnsupportedRange)
}

// TestTKVDriver_WatchPutEvent tests that a put under a watched prefix is reported.
func TestTKVDriver_WatchPutEvent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	driver := createTestDriver(ctx, t)

	prefix := []byte("/test/watch/" + t.Name() + "/")
	key := append(append([]byte{}, prefix...), []byte("key")...)

	defer cleanupTestKey(ctx, driver, key)

	events, stop, err := driver.Watch(ctx, prefix)
	require.NoError(t, err)

	defer stop()

	// The first event reports the current state.
	select {
	case <-events:
	case <-ctx.Done():
		t.Fatal("timed out waiting for the initial watch event")
	}

	_, err = driver.Execute(ctx, nil, []operation.Operation{
		operation.Put(key, []byte("value")),
	}, nil)
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, prefix, event.Prefix)
	case <-ctx.Done():
		t.Fatal("timed out waiting for the put watch event")
	}
}
