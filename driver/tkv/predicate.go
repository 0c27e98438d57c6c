package tkv

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-kvrange/predicate"
)

var (
	// ErrUnknownOperator is returned when the operator is unknown.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrUnknownTarget is returned when the target is unknown.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrInvalidPredicateValue is returned when the value type does not suit the target.
	ErrInvalidPredicateValue = errors.New("invalid predicate value")

	_ msgpack.CustomEncoder = tkvPredicate{Predicate: nil}

	//nolint: gochecknoglobals
	operators = map[predicate.Op]string{
		predicate.OpEqual:    "==",
		predicate.OpNotEqual: "!=",
		predicate.OpGreater:  ">",
		predicate.OpLess:     "<",
	}

	//nolint: gochecknoglobals
	targets = map[predicate.Target]string{
		predicate.TargetValue:   "value",
		predicate.TargetVersion: "mod_revision",
	}
)

// FailedToEncodeTkvPredicateError is returned when a predicate cannot be encoded.
type FailedToEncodeTkvPredicateError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e FailedToEncodeTkvPredicateError) Error() string {
	return fmt.Sprintf("failed to encode tkvPredicate, %s: %s", e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e FailedToEncodeTkvPredicateError) Unwrap() error {
	return e.Err
}

// predicateValue returns the value in the form config storage compares:
// strings for values, integers for revisions.
func predicateValue(pred predicate.Predicate) (any, error) {
	switch pred.Target() {
	case predicate.TargetValue:
		switch value := pred.Value().(type) {
		case []byte:
			return string(value), nil
		case string:
			return value, nil
		}
	case predicate.TargetVersion:
		if value, ok := pred.Value().(int64); ok {
			return value, nil
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownTarget, pred.Target())
	}

	return nil, fmt.Errorf("%w: %T for %v", ErrInvalidPredicateValue, pred.Value(), pred.Target())
}

// validatePredicates reports the first predicate config storage cannot check.
func validatePredicates(predicates []predicate.Predicate) error {
	for i, pred := range predicates {
		if _, ok := operators[pred.Operation()]; !ok {
			return fmt.Errorf("predicate #%d: %w: %v", i, ErrUnknownOperator, pred.Operation())
		}

		if _, err := predicateValue(pred); err != nil {
			return fmt.Errorf("predicate #%d: %w", i, err)
		}
	}

	return nil
}

type tkvPredicate struct {
	predicate.Predicate
}

func newTKVPredicates(predicates []predicate.Predicate) []tkvPredicate {
	tkvPredicates := make([]tkvPredicate, 0, len(predicates))
	for _, p := range predicates {
		tkvPredicates = append(tkvPredicates, tkvPredicate{p})
	}

	return tkvPredicates
}

const (
	predicateArrayLen = 4
)

// EncodeMsgpack writes the predicate as {target, operator, value, path}.
func (p tkvPredicate) EncodeMsgpack(encoder *msgpack.Encoder) error {
	op, ok := operators[p.Operation()] //nolint:varnamelen
	if !ok {
		return ErrUnknownOperator
	}

	target, ok := targets[p.Target()]
	if !ok {
		return ErrUnknownTarget
	}

	value, err := predicateValue(p.Predicate)
	if err != nil {
		return FailedToEncodeTkvPredicateError{Text: "resolve value", Err: err}
	}

	for _, step := range []struct {
		text   string
		encode func() error
	}{
		{"encode array length", func() error { return encoder.EncodeArrayLen(predicateArrayLen) }},
		{"encode target", func() error { return encoder.EncodeString(target) }},
		{"encode operator", func() error { return encoder.EncodeString(op) }},
		{"encode value", func() error { return encoder.Encode(value) }},
		// Paths are strings on the storage side, msgpack would write []byte as bin.
		{"encode key", func() error { return encoder.EncodeString(string(p.Key())) }},
	} {
		err = step.encode()
		if err != nil {
			return FailedToEncodeTkvPredicateError{Text: step.text, Err: err}
		}
	}

	return nil
}
