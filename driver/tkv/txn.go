package tkv

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-kvrange/header"
	"github.com/tarantool/go-kvrange/internal/rangeeval"
	"github.com/tarantool/go-kvrange/kv"
	"github.com/tarantool/go-kvrange/operation"
	"github.com/tarantool/go-kvrange/predicate"
	"github.com/tarantool/go-kvrange/tx"
)

// FailedToDecodeTxnResponseDataSingleError is returned when we failed to decode txnResponseDataSingle.
type FailedToDecodeTxnResponseDataSingleError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e FailedToDecodeTxnResponseDataSingleError) Error() string {
	return fmt.Sprintf("failed to decode txnResponseDataSingle, %s: %s", e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e FailedToDecodeTxnResponseDataSingleError) Unwrap() error {
	return e.Err
}

type txnResponseDataSingle struct {
	Response []struct {
		Path        []byte `msgpack:"path"`
		ModRevision int64  `msgpack:"mod_revision"`
		Value       []byte `msgpack:"value"`
	}
}

func (t *txnResponseDataSingle) DecodeMsgpack(decoder *msgpack.Decoder) error {
	err := decoder.Decode(&t.Response)
	if err != nil {
		return FailedToDecodeTxnResponseDataSingleError{Text: "decode response", Err: err}
	}

	return nil
}

type txnResponseData struct {
	IsSuccess bool                    `msgpack:"is_success"`
	Responses []txnResponseDataSingle `msgpack:"responses"`
}

type txnResponse struct {
	Data     txnResponseData `msgpack:"data"`
	Revision int64           `msgpack:"revision"`
}

// keyValues converts the pairs returned for one operation.
// Pairs without mod_revision get the transaction revision.
func (r txnResponse) keyValues(single txnResponseDataSingle) []kv.KeyValue {
	keyValues := make([]kv.KeyValue, 0, len(single.Response))

	for _, resp := range single.Response {
		modRevision := resp.ModRevision
		if modRevision == 0 && r.Revision != 0 {
			modRevision = r.Revision
		}

		keyValues = append(keyValues, kv.KeyValue{
			Key:            resp.Path,
			Value:          resp.Value,
			CreateRevision: 0,
			ModRevision:    modRevision,
			Version:        0,
			Lease:          0,
		})
	}

	return keyValues
}

func (r txnResponse) header() header.Header {
	return header.Header{
		ClusterID: 0,
		MemberID:  0,
		Revision:  r.Revision,
		RaftTerm:  0,
	}
}

// asTxnResponse converts the reply; ops are the operations of the executed branch.
// Range operations are shaped by their query, since the storage returns the
// whole path contents.
func (r txnResponse) asTxnResponse(ops []operation.Operation) tx.Response {
	results := make([]tx.RequestResponse, 0, len(r.Data.Responses))

	for i, val := range r.Data.Responses {
		keyValues := r.keyValues(val)

		if i < len(ops) && ops[i].Type() == operation.TypeRange {
			page := rangeeval.Evaluate(ops[i].Query(), keyValues)

			results = append(results, tx.RequestResponse{
				Values: page.KVs,
				More:   page.More,
				Count:  page.Count,
			})

			continue
		}

		results = append(results, tx.RequestResponse{
			Values: keyValues,
			More:   false,
			Count:  int64(len(keyValues)),
		})
	}

	return tx.Response{
		Header:    r.header(),
		Succeeded: r.Data.IsSuccess,
		Results:   results,
	}
}

type txnRequest struct {
	_msgpack struct{} `msgpack:",omitempty"`

	Predicates []tkvPredicate `msgpack:"predicates"`
	OnSuccess  []tkvOperation `msgpack:"on_success"`
	OnFailure  []tkvOperation `msgpack:"on_failure"`
}

func newTxnRequest(
	predicates []predicate.Predicate,
	onSuccess []operation.Operation,
	onFailure []operation.Operation,
) txnRequest {
	return txnRequest{
		_msgpack:   struct{}{},
		Predicates: newTKVPredicates(predicates),
		OnSuccess:  newTKVOperations(onSuccess),
		OnFailure:  newTKVOperations(onFailure),
	}
}
