package etcd

import (
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-kvrange/predicate"
)

var valueOperators = map[predicate.Op]string{ //nolint:gochecknoglobals
	predicate.OpEqual:    "=",
	predicate.OpNotEqual: "!=",
}

var versionOperators = map[predicate.Op]string{ //nolint:gochecknoglobals
	predicate.OpEqual:    "=",
	predicate.OpNotEqual: "!=",
	predicate.OpGreater:  ">",
	predicate.OpLess:     "<",
}

// predicatesToCmps converts a predicate list to an etcd comparison list.
func predicatesToCmps(predicates []predicate.Predicate) ([]etcd.Cmp, error) {
	cmps := make([]etcd.Cmp, 0, len(predicates))

	for i, pred := range predicates {
		cmp, err := predicateToCmp(pred)
		if err != nil {
			return nil, fmt.Errorf("predicate #%d: %w", i, err)
		}

		cmps = append(cmps, cmp)
	}

	return cmps, nil
}

func predicateToCmp(pred predicate.Predicate) (etcd.Cmp, error) {
	switch pred.Target() {
	case predicate.TargetValue:
		return valuePredicateToCmp(pred)
	case predicate.TargetVersion:
		return versionPredicateToCmp(pred)
	default:
		return etcd.Cmp{}, fmt.Errorf("%w: %v", errUnsupportedPredicateTarget, pred.Target())
	}
}

// valuePredicateToCmp compares the stored value with a []byte or string.
func valuePredicateToCmp(pred predicate.Predicate) (etcd.Cmp, error) {
	var value string

	switch v := pred.Value().(type) {
	case []byte:
		value = string(v)
	case string:
		value = v
	default:
		return etcd.Cmp{}, fmt.Errorf("%w, got %T", errValuePredicateType, pred.Value())
	}

	operator, ok := valueOperators[pred.Operation()]
	if !ok {
		return etcd.Cmp{}, fmt.Errorf("%w: %v", errUnsupportedValueOperation, pred.Operation())
	}

	return etcd.Compare(etcd.Value(string(pred.Key())), operator, value), nil
}

// versionPredicateToCmp compares the mod revision of the key, the same
// revision rangequery.Query mod-revision bounds filter on.
func versionPredicateToCmp(pred predicate.Predicate) (etcd.Cmp, error) {
	version, ok := pred.Value().(int64)
	if !ok {
		return etcd.Cmp{}, fmt.Errorf("%w, got %T", errVersionPredicateType, pred.Value())
	}

	operator, ok := versionOperators[pred.Operation()]
	if !ok {
		return etcd.Cmp{}, fmt.Errorf("%w: %v", errUnsupportedVersionOperation, pred.Operation())
	}

	return etcd.Compare(etcd.ModRevision(string(pred.Key())), operator, version), nil
}
