package watch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-kvrange/watch"
)

func TestApply(t *testing.T) {
	t.Parallel()

	assert.False(t, watch.Apply(nil).Prefix)
	assert.True(t, watch.Apply([]watch.Option{watch.WithPrefix()}).Prefix)
}
