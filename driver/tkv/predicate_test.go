package tkv //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-kvrange/predicate"
)

type rawPredicate struct {
	op     predicate.Op
	target predicate.Target
	value  any
}

func (r rawPredicate) Key() []byte              { return []byte("/a") }
func (r rawPredicate) Operation() predicate.Op  { return r.op }
func (r rawPredicate) Target() predicate.Target { return r.target }
func (r rawPredicate) Value() any               { return r.value }

func TestPredicate_EncodeMsgpack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		predicate predicate.Predicate
		expected  []any
	}{
		{
			name:      "value equal bytes",
			predicate: predicate.ValueEqual([]byte("/a"), []byte("1")),
			expected:  []any{"value", "==", "1", "/a"},
		},
		{
			name:      "value not equal string",
			predicate: predicate.ValueNotEqual([]byte("/a"), "1"),
			expected:  []any{"value", "!=", "1", "/a"},
		},
		{
			name:      "version greater",
			predicate: predicate.VersionGreater([]byte("/a"), 5),
			expected:  []any{"mod_revision", ">", int64(5), "/a"},
		},
		{
			name:      "version less",
			predicate: predicate.VersionLess([]byte("/a"), 500),
			expected:  []any{"mod_revision", "<", int64(500), "/a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := msgpack.Marshal(tkvPredicate{tt.predicate})
			require.NoError(t, err)

			var decoded []any
			require.NoError(t, msgpack.Unmarshal(data, &decoded))
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestValidatePredicates(t *testing.T) {
	t.Parallel()

	require.NoError(t, validatePredicates([]predicate.Predicate{
		predicate.ValueEqual([]byte("/a"), "1"),
		predicate.VersionEqual([]byte("/a"), 1),
	}))

	tests := []struct {
		name      string
		predicate predicate.Predicate
		expected  error
	}{
		{"value of unsupported type", predicate.ValueEqual([]byte("/a"), 1), ErrInvalidPredicateValue},
		{"version of unsupported type", rawPredicate{predicate.OpEqual, predicate.TargetVersion, "1"}, ErrInvalidPredicateValue},
		{"unknown operator", rawPredicate{predicate.Op(42), predicate.TargetValue, "1"}, ErrUnknownOperator},
		{"unknown target", rawPredicate{predicate.OpEqual, predicate.Target(42), "1"}, ErrUnknownTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validatePredicates([]predicate.Predicate{predicate.ValueEqual([]byte("/b"), "x"), tt.predicate})
			require.ErrorIs(t, err, tt.expected)
			assert.Contains(t, err.Error(), "predicate #1")

			_, err = msgpack.Marshal(tkvPredicate{tt.predicate})
			require.ErrorIs(t, err, tt.expected)
		})
	}
}
