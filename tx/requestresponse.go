package tx

import "github.com/tarantool/go-kvrange/kv"

// RequestResponse represents the response for an individual transaction operation.
type RequestResponse struct {
	// Values contains the result data for Get and Range operations and
	// the previous pairs for Delete operations.
	Values []kv.KeyValue
	// More is set when a limited Range operation left matching keys out.
	More bool
	// Count is the number of keys matched by a Get or Range operation.
	Count int64
}
