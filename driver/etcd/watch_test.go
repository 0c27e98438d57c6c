package etcd_test

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"
	etcdclient "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-kvrange/driver/etcd"
	"github.com/tarantool/go-kvrange/internal/mocks"
	"github.com/tarantool/go-kvrange/watch"
)

const watchWaitTimeout = 5 * time.Second

func putEvent(key string, modRevision int64) *etcdclient.Event {
	return &etcdclient.Event{ //nolint:exhaustruct
		Type: mvccpb.PUT,
		Kv:   &mvccpb.KeyValue{Key: []byte(key), ModRevision: modRevision}, //nolint:exhaustruct
	}
}

func TestDriver_Watch_Events(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		opts     []watch.Option
		prefixed bool
	}{
		{"single key", "/cfg/key", nil, false},
		{"trailing slash", "/cfg/", nil, true},
		{"prefix option", "/cfg", []watch.Option{watch.WithPrefix()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			watchCh := make(chan etcdclient.WatchResponse, 1)

			watcherMock := mocks.NewWatcherMock(mc)
			watcherMock.WatchMock.Times(1).Set(
				func(_ context.Context, key string, opts ...etcdclient.OpOption) etcdclient.WatchChan {
					assert.Equal(t, tt.key, key)

					op := etcdclient.OpGet(key, opts...)
					assert.Equal(t, tt.prefixed, len(op.RangeBytes()) > 0)

					return watchCh
				})
			watcherMock.CloseMock.Times(1).Set(func() error {
				close(watchCh)
				return nil
			})

			factoryMock := mocks.NewWatcherFactoryMock(mc).NewWatcherMock.Expect(nil).Times(1).Return(watcherMock)

			driver := etcd.NewWithClients(nil, mocks.NewRangeClientMock(mc), etcd.WithWatcherFactory(factoryMock))

			events, stop, err := driver.Watch(context.Background(), []byte(tt.key), tt.opts...)
			require.NoError(t, err)

			watchCh <- etcdclient.WatchResponse{ //nolint:exhaustruct
				Header: etcdserverpb.ResponseHeader{Revision: 9}, //nolint:exhaustruct
				Events: []*etcdclient.Event{putEvent(tt.key+"1", 7), putEvent(tt.key+"2", 8)},
			}

			for _, revision := range []int64{7, 8} {
				select {
				case event := <-events:
					assert.Equal(t, []byte(tt.key), event.Prefix)
					assert.Equal(t, revision, event.Revision)
				case <-time.After(watchWaitTimeout):
					t.Fatal("expected watch event but timed out")
				}
			}

			stop()

			select {
			case _, ok := <-events:
				assert.False(t, ok)
			case <-time.After(watchWaitTimeout):
				t.Fatal("channel was not closed after stop")
			}

			mc.Wait(watchWaitTimeout)
		})
	}
}
