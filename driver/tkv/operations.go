package tkv

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-kvrange/operation"
)

// Error definitions for err113 compliance.
var (
	// ErrUnknownOperation is returned when the operation is unknown.
	ErrUnknownOperation = errors.New("unknown operation")
)

// FailedToEncodeTkvOperationError is returned when we failed to encode tkvOperation.
type FailedToEncodeTkvOperationError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e FailedToEncodeTkvOperationError) Error() string {
	return fmt.Sprintf("failed to encode tkvOperation, %s: %s", e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e FailedToEncodeTkvOperationError) Unwrap() error {
	return e.Err
}

const (
	// putOperationArrayLen is the length of the array that is used to encode a put operation.
	putOperationArrayLen = 3
	// otherOperationArrayLen is the length of the array that is used to encode a delete operation.
	otherOperationArrayLen = 2
)

var (
	//nolint: gochecknoglobals
	ops = map[operation.Type]string{
		operation.TypeGet:    "get",
		operation.TypePut:    "put",
		operation.TypeDelete: "delete",
		operation.TypeRange:  "get",
	}
)

// getOperation returns the TKV operation string for an operation type.
func getOperation(opType operation.Type) (string, bool) {
	result, ok := ops[opType]
	return result, ok
}

type tkvOperation struct {
	operation.Operation
}

// path returns the config storage path the operation applies to.
func (o tkvOperation) path() ([]byte, error) {
	if o.Type() == operation.TypeRange {
		return rangePath(o.Query())
	}

	return o.Key(), nil
}

// validateOperations reports the first operation config storage cannot run.
func validateOperations(operations []operation.Operation) error {
	for i, o := range operations {
		_, err := tkvOperation{o}.path()
		if err != nil {
			return fmt.Errorf("operation #%d: %w", i, err)
		}
	}

	return nil
}

// newTKVOperations returns a slice of TKV operations from a slice of operations.
func newTKVOperations(operations []operation.Operation) []tkvOperation {
	tkvOperations := make([]tkvOperation, 0, len(operations))
	for _, o := range operations {
		tkvOperations = append(tkvOperations, tkvOperation{o})
	}

	return tkvOperations
}

func (o tkvOperation) EncodeMsgpack(encoder *msgpack.Encoder) error {
	op, ok := getOperation(o.Type()) //nolint:varnamelen
	if !ok {
		return ErrUnknownOperation
	}

	path, err := o.path()
	if err != nil {
		return FailedToEncodeTkvOperationError{Text: "resolve operation path", Err: err}
	}

	switch {
	case o.Type() == operation.TypePut:
		err = encoder.EncodeArrayLen(putOperationArrayLen)
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode put operation array length", Err: err}
		}

		err = encoder.EncodeString(op)
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode put operation", Err: err}
		}

		err = encoder.EncodeString(string(path))
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode put operation key", Err: err}
		}

		err = encoder.EncodeString(string(o.Value()))
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode put operation value", Err: err}
		}
	default:
		err = encoder.EncodeArrayLen(otherOperationArrayLen)
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode operation array length", Err: err}
		}

		err = encoder.EncodeString(op)
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode operation", Err: err}
		}

		err = encoder.EncodeString(string(path))
		if err != nil {
			return FailedToEncodeTkvOperationError{Text: "encode operation key", Err: err}
		}
	}

	return nil
}
