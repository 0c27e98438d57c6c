package rangequery

import (
	"go.etcd.io/etcd/api/v3/etcdserverpb"
)

// SortTarget selects the field returned pairs are ordered by.
type SortTarget int

const (
	// SortNone requests no sorting: pairs come back in the store's natural key order.
	SortNone SortTarget = iota
	// SortByKey orders pairs by key.
	SortByKey
	// SortByVersion orders pairs by version.
	SortByVersion
	// SortByCreateRevision orders pairs by create revision.
	SortByCreateRevision
	// SortByModRevision orders pairs by mod revision.
	SortByModRevision
	// SortByValue orders pairs by value.
	SortByValue
)

func (t SortTarget) String() string {
	switch t {
	case SortNone:
		return "None"
	case SortByKey:
		return "Key"
	case SortByVersion:
		return "Version"
	case SortByCreateRevision:
		return "CreateRevision"
	case SortByModRevision:
		return "ModRevision"
	case SortByValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// SortOrder is the direction of sorting.
type SortOrder int

const (
	// Ascending sorts from the smallest to the largest.
	Ascending SortOrder = iota
	// Descending sorts from the largest to the smallest.
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return "Unknown"
	}
}

// Sort is a sort policy: a target and a direction that are always set together.
type Sort struct {
	Target SortTarget
	Order  SortOrder
}

var (
	//nolint: gochecknoglobals
	sortTargets = map[SortTarget]etcdserverpb.RangeRequest_SortTarget{
		SortByKey:            etcdserverpb.RangeRequest_KEY,
		SortByVersion:        etcdserverpb.RangeRequest_VERSION,
		SortByCreateRevision: etcdserverpb.RangeRequest_CREATE,
		SortByModRevision:    etcdserverpb.RangeRequest_MOD,
		SortByValue:          etcdserverpb.RangeRequest_VALUE,
	}

	//nolint: gochecknoglobals
	sortOrders = map[SortOrder]etcdserverpb.RangeRequest_SortOrder{
		Ascending:  etcdserverpb.RangeRequest_ASCEND,
		Descending: etcdserverpb.RangeRequest_DESCEND,
	}
)

// Wire returns the wire codes of the policy. Anything without a known
// target and order maps to natural key order (KEY, NONE).
func (s Sort) Wire() (etcdserverpb.RangeRequest_SortTarget, etcdserverpb.RangeRequest_SortOrder) {
	target, okTarget := sortTargets[s.Target]
	order, okOrder := sortOrders[s.Order]

	if !okTarget || !okOrder {
		return etcdserverpb.RangeRequest_KEY, etcdserverpb.RangeRequest_NONE
	}

	return target, order
}

// IsNatural reports whether pairs come back in ascending key order.
func (s Sort) IsNatural() bool {
	target, order := s.Wire()

	return target == etcdserverpb.RangeRequest_KEY && order != etcdserverpb.RangeRequest_DESCEND
}

func (s Sort) String() string {
	if _, ok := sortTargets[s.Target]; !ok {
		return SortNone.String()
	}

	return s.Target.String() + " " + s.Order.String()
}
