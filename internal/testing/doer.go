package testing

import (
	"bytes"
	"sync"

	"github.com/tarantool/go-tarantool/v2"
)

// MockDoer replays prepared replies in order, one per request.
type MockDoer struct {
	mu sync.Mutex
	t  T

	// Requests holds every request passed to Do, in arrival order.
	Requests []tarantool.Request
	replies  []any
}

// NewMockDoer creates a MockDoer. Every reply is either a *MockResponse
// or an error.
func NewMockDoer(t T, replies ...any) *MockDoer {
	t.Helper()

	for i, reply := range replies {
		switch reply.(type) {
		case *MockResponse, error:
		default:
			t.Fatalf("reply #%d: unsupported type %T", i, reply)
		}
	}

	return &MockDoer{
		mu:       sync.Mutex{},
		t:        t,
		Requests: nil,
		replies:  replies,
	}
}

// Do records req and resolves a future with the next prepared reply.
func (d *MockDoer) Do(req tarantool.Request) *tarantool.Future {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Requests = append(d.Requests, req)
	fut := tarantool.NewFuture(NewMockRequest())

	if len(d.replies) == 0 {
		d.t.Fatalf("unexpected request #%d: no replies left", len(d.Requests))
		fut.SetError(errNoReplies)

		return fut
	}

	reply := d.replies[0]
	d.replies = d.replies[1:]

	switch reply := reply.(type) {
	case error:
		fut.SetError(reply)
	case *MockResponse:
		if err := fut.SetResponse(reply.header, bytes.NewReader(reply.data)); err != nil {
			d.t.Errorf("failed to set mock response: %s", err)
		}
	}

	return fut
}

// Remaining returns the number of replies not consumed yet.
func (d *MockDoer) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.replies)
}
