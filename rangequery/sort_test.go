package rangequery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrange/rangequery"
)

func TestSort_Wire(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sort   rangequery.Sort
		target etcdserverpb.RangeRequest_SortTarget
		order  etcdserverpb.RangeRequest_SortOrder
	}{
		{"none", rangequery.Sort{Target: rangequery.SortNone, Order: rangequery.Ascending},
			etcdserverpb.RangeRequest_KEY, etcdserverpb.RangeRequest_NONE},
		{"none descending", rangequery.Sort{Target: rangequery.SortNone, Order: rangequery.Descending},
			etcdserverpb.RangeRequest_KEY, etcdserverpb.RangeRequest_NONE},
		{"key ascending", rangequery.Sort{Target: rangequery.SortByKey, Order: rangequery.Ascending},
			etcdserverpb.RangeRequest_KEY, etcdserverpb.RangeRequest_ASCEND},
		{"version descending", rangequery.Sort{Target: rangequery.SortByVersion, Order: rangequery.Descending},
			etcdserverpb.RangeRequest_VERSION, etcdserverpb.RangeRequest_DESCEND},
		{"create ascending", rangequery.Sort{Target: rangequery.SortByCreateRevision, Order: rangequery.Ascending},
			etcdserverpb.RangeRequest_CREATE, etcdserverpb.RangeRequest_ASCEND},
		{"mod descending", rangequery.Sort{Target: rangequery.SortByModRevision, Order: rangequery.Descending},
			etcdserverpb.RangeRequest_MOD, etcdserverpb.RangeRequest_DESCEND},
		{"value ascending", rangequery.Sort{Target: rangequery.SortByValue, Order: rangequery.Ascending},
			etcdserverpb.RangeRequest_VALUE, etcdserverpb.RangeRequest_ASCEND},
		{"unknown target", rangequery.Sort{Target: rangequery.SortTarget(99), Order: rangequery.Ascending},
			etcdserverpb.RangeRequest_KEY, etcdserverpb.RangeRequest_NONE},
		{"unknown order", rangequery.Sort{Target: rangequery.SortByValue, Order: rangequery.SortOrder(99)},
			etcdserverpb.RangeRequest_KEY, etcdserverpb.RangeRequest_NONE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target, order := tt.sort.Wire()
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.order, order)
		})
	}
}

func TestSort_IsNatural(t *testing.T) {
	t.Parallel()

	assert.True(t, rangequery.Sort{Target: rangequery.SortNone, Order: rangequery.Descending}.IsNatural())
	assert.True(t, rangequery.Sort{Target: rangequery.SortByKey, Order: rangequery.Ascending}.IsNatural())
	assert.False(t, rangequery.Sort{Target: rangequery.SortByKey, Order: rangequery.Descending}.IsNatural())
	assert.False(t, rangequery.Sort{Target: rangequery.SortByValue, Order: rangequery.Ascending}.IsNatural())
}

func TestSort_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sort     rangequery.Sort
		expected string
	}{
		{"none", rangequery.Sort{Target: rangequery.SortNone, Order: rangequery.Ascending}, "None"},
		{"key", rangequery.Sort{Target: rangequery.SortByKey, Order: rangequery.Ascending}, "Key Ascending"},
		{"mod", rangequery.Sort{Target: rangequery.SortByModRevision, Order: rangequery.Descending}, "ModRevision Descending"},
		{"unknown", rangequery.Sort{Target: rangequery.SortTarget(42), Order: rangequery.Ascending}, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.sort.String())
		})
	}
}

func TestSortTargetString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CreateRevision", rangequery.SortByCreateRevision.String())
	assert.Equal(t, "Version", rangequery.SortByVersion.String())
	assert.Equal(t, "Value", rangequery.SortByValue.String())
	assert.Equal(t, "Unknown", rangequery.SortTarget(-1).String())
	assert.Equal(t, "Descending", rangequery.Descending.String())
	assert.Equal(t, "Unknown", rangequery.SortOrder(5).String())
}
