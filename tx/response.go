package tx

import "github.com/tarantool/go-kvrange/header"

// Response contains the result of a transaction execution.
type Response struct {
	// Header is the metadata of the member that executed the transaction.
	Header header.Header
	// Succeeded indicates whether the transaction predicates evaluated to true.
	Succeeded bool
	// Results contains the responses for each operation in Then/Else blocks.
	Results []RequestResponse
}
