// Package testing provides replaying fakes of go-tarantool connections
// and a testing.T stand-in for runnable examples.
package testing

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tarantool/go-tarantool/v2"
)

var (
	errNoReplies = errors.New("no replies left")
	// ErrUnknownWatchKey is returned by NewWatcher for keys without prepared events.
	ErrUnknownWatchKey = errors.New("no events prepared for watch key")
)

const (
	delayBeforeFirstEvent = 100 * time.Millisecond
	delayBetweenEvents    = 10 * time.Millisecond
)

// MockDoerWithWatcher adds box.watch style notifications to a MockDoer.
// Events are delivered per key in the prepared order.
type MockDoerWithWatcher struct {
	*MockDoer

	events map[string][]tarantool.WatchEvent
}

// NewMockDoerWithWatcher wraps doer and serves events by watch key.
func NewMockDoerWithWatcher(doer *MockDoer, events map[string][]tarantool.WatchEvent) *MockDoerWithWatcher {
	return &MockDoerWithWatcher{MockDoer: doer, events: events}
}

// NewWatcher starts delivering the events prepared for key to callback.
func (m *MockDoerWithWatcher) NewWatcher(key string, callback tarantool.WatchCallback) (tarantool.Watcher, error) {
	events, ok := m.events[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWatchKey, key)
	}

	watcher := &replayWatcher{
		stopOnce: sync.Once{},
		stopped:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	go watcher.replay(events, callback)

	return watcher, nil
}

type replayWatcher struct {
	stopOnce sync.Once
	stopped  chan struct{}
	done     chan struct{}
}

func (w *replayWatcher) replay(events []tarantool.WatchEvent, callback tarantool.WatchCallback) {
	defer close(w.done)

	delay := delayBeforeFirstEvent

	for _, event := range events {
		select {
		case <-w.stopped:
			return
		case <-time.After(delay):
		}

		callback(event)

		delay = delayBetweenEvents
	}
}

// Unregister stops the delivery and waits for a running callback to return.
// It is safe to call more than once.
func (w *replayWatcher) Unregister() {
	w.stopOnce.Do(func() { close(w.stopped) })
	<-w.done
}
