// Package storage provides range queries, transactions and watches over
// multi-version key-value stores such as etcd and Tarantool config storage.
//
// Queries are built with the [github.com/tarantool/go-kvrange/rangequery]
// package and executed by a [github.com/tarantool/go-kvrange/driver.Driver]:
//
//	query := rangequery.New(keyrange.Prefix([]byte("/config/"))).
//		WithLimit(100).
//		SortBy(rangequery.SortByModRevision, rangequery.Descending)
//
//	result, err := storage.NewStorage(etcd.New(client)).Range(ctx, query)
//
// Paginate walks a large interval page by page at a single revision.
package storage
