package etcd_test

// This file provides example tests for the etcd driver using LazyCluster.
// These examples demonstrate real usage with a running etcd instance.
//
// Due to inability to start multiple LazyClusters - we're using one LazyCluster
// and won't start tests in parallel here.

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	etcdclient "go.etcd.io/etcd/client/v3"
	etcdfintegration "go.etcd.io/etcd/tests/v3/framework/integration"

	"github.com/tarantool/go-kvrange/driver/etcd"
	testingUtils "github.com/tarantool/go-kvrange/internal/testing"
	etcdtestingUtils "github.com/tarantool/go-kvrange/internal/testing/etcd"
	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/rangequery"
)

const (
	exampleTestDialTimeout = 5 * time.Second
)

// createEtcdDriver creates an etcd driver for examples using the integration framework.
// Returns driver and cleanup function.
func createEtcdDriver(tb testing.TB) (*etcd.Driver, func()) {
	tb.Helper()

	etcdfintegration.BeforeTest(etcdtestingUtils.NewSilentTB(tb), etcdfintegration.WithoutGoLeakDetection())

	cluster := etcdtestingUtils.NewLazyCluster()

	tb.Cleanup(func() { cluster.Terminate() })

	endpoints := cluster.EndpointsGRPC()

	client, err := etcdclient.New(etcdclient.Config{
		Endpoints:   endpoints,
		DialTimeout: exampleTestDialTimeout,

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
	if err != nil {
		tb.Fatalf("Failed to create etcd client: %v", err)
	}

	tb.Cleanup(func() { _ = client.Close() })

	driver := etcd.New(client)

	return driver, func() {}
}

func seedExampleKeys(ctx context.Context, driver *etcd.Driver, keys ...string) {
	ops := make([]operation.Operation, 0, len(keys))
	for _, key := range keys {
		ops = append(ops, operation.Put([]byte(key), []byte("value of "+key)))
	}

	_, err := driver.Execute(ctx, nil, ops, nil)
	if err != nil {
		log.Printf("Seeding failed: %v", err)
	}
}

// ExampleDriver_Range_prefix demonstrates reading every key under a prefix.
func ExampleDriver_Range_prefix() {
	// Create a testing context for the example.
	t := testingUtils.NewT()
	defer t.Cleanups()

	ctx := context.Background()

	driver, cleanup := createEtcdDriver(t)
	defer cleanup()

	seedExampleKeys(ctx, driver, "/services/api", "/services/db", "/settings/mode")

	result, err := driver.Range(ctx, rangequery.New(keyrange.Prefix([]byte("/services/"))))
	if err != nil {
		log.Printf("Range failed: %v", err)
		return
	}

	for _, kv := range result.KVs {
		fmt.Printf("%s = %s\n", kv.Key, kv.Value)
	}

	fmt.Println("more:", result.More, "count:", result.Count)

	// Output:
	// /services/api = value of /services/api
	// /services/db = value of /services/db
	// more: false count: 2
}

// ExampleDriver_Range_sortedKeysOnly demonstrates a limited, descending, keys-only query.
func ExampleDriver_Range_sortedKeysOnly() {
	// Create a testing context for the example.
	t := testingUtils.NewT()
	defer t.Cleanups()

	ctx := context.Background()

	driver, cleanup := createEtcdDriver(t)
	defer cleanup()

	seedExampleKeys(ctx, driver, "/queue/1", "/queue/2", "/queue/3")

	query := rangequery.New(keyrange.Prefix([]byte("/queue/"))).
		SortBy(rangequery.SortByKey, rangequery.Descending).
		WithLimit(2).
		KeysOnly()

	result, err := driver.Range(ctx, query)
	if err != nil {
		log.Printf("Range failed: %v", err)
		return
	}

	for _, kv := range result.KVs {
		fmt.Printf("%s (value %q)\n", kv.Key, kv.Value)
	}

	fmt.Println("more:", result.More, "count:", result.Count)

	// Output:
	// /queue/3 (value "")
	// /queue/2 (value "")
	// more: true count: 3
}

// ExampleDriver_Range_pagination demonstrates reading a range page by page at one revision.
func ExampleDriver_Range_pagination() {
	// Create a testing context for the example.
	t := testingUtils.NewT()
	defer t.Cleanups()

	ctx := context.Background()

	driver, cleanup := createEtcdDriver(t)
	defer cleanup()

	seedExampleKeys(ctx, driver, "/jobs/a", "/jobs/b", "/jobs/c")

	query := rangequery.New(keyrange.Prefix([]byte("/jobs/"))).WithLimit(2)

	for page := 1; ; page++ {
		result, err := driver.Range(ctx, query)
		if err != nil {
			log.Printf("Range failed: %v", err)
			return
		}

		fmt.Printf("page %d: %d keys\n", page, len(result.KVs))

		next, ok := query.NextPage(result)
		if !ok {
			break
		}

		query = next
	}

	// Output:
	// page 1: 2 keys
	// page 2: 1 keys
}

// ExampleDriver_Execute_rangeInTransaction demonstrates a guarded transaction reading a range.
func ExampleDriver_Execute_rangeInTransaction() {
	// Create a testing context for the example.
	t := testingUtils.NewT()
	defer t.Cleanups()

	ctx := context.Background()

	driver, cleanup := createEtcdDriver(t)
	defer cleanup()

	seedExampleKeys(ctx, driver, "/nodes/1", "/nodes/2", "/lock")

	response, err := driver.Execute(ctx, []predicate.Predicate{
		predicate.ValueEqual([]byte("/lock"), []byte("value of /lock")),
	}, []operation.Operation{
		operation.Range(rangequery.New(keyrange.Prefix([]byte("/nodes/"))).CountOnly()),
	}, nil)
	if err != nil {
		log.Printf("Transaction failed: %v", err)
		return
	}

	fmt.Println("succeeded:", response.Succeeded, "nodes:", response.Results[0].Count)

	// Output:
	// succeeded: true nodes: 2
}

// ExampleDriver_Watch_prefix demonstrates watching every key under a prefix.
func ExampleDriver_Watch_prefix() {
	// Create a testing context for the example.
	t := testingUtils.NewT()
	defer t.Cleanups()

	ctx := context.Background()

	driver, cleanup := createEtcdDriver(t)
	defer cleanup()

	prefix := []byte("/events/")

	watchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	eventCh, stopWatch, err := driver.Watch(watchCtx, prefix)
	if err != nil {
		log.Printf("Failed to start watch: %v", err)
		return
	}
	defer stopWatch()

	go func() {
		time.Sleep(100 * time.Millisecond)

		seedExampleKeys(ctx, driver, "/events/started")
	}()

	select {
	case event := <-eventCh:
		fmt.Printf("Received watch event for prefix: %s\n", event.Prefix)
	case <-watchCtx.Done():
		fmt.Println("Watch context expired")
	}

	// Output:
	// Received watch event for prefix: /events/
}
