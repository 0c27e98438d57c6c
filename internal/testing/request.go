package testing

import (
	"context"
	"io"

	"github.com/tarantool/go-iproto"
	"github.com/tarantool/go-tarantool/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// MockRequest is an empty request used to build futures in MockDoer.
type MockRequest struct{}

var _ tarantool.Request = &MockRequest{}

// NewMockRequest returns a new empty request.
func NewMockRequest() *MockRequest {
	return &MockRequest{}
}

// Type returns an empty request type.
func (r *MockRequest) Type() iproto.Type {
	return iproto.Type(0)
}

// Async reports that a response is expected.
func (r *MockRequest) Async() bool {
	return false
}

// Body writes nothing.
func (r *MockRequest) Body(_ tarantool.SchemaResolver, _ *msgpack.Encoder) error {
	return nil
}

// Ctx returns the background context.
func (r *MockRequest) Ctx() context.Context {
	return context.Background()
}

// Response wraps the body into a MockResponse.
func (r *MockRequest) Response(header tarantool.Header, body io.Reader) (tarantool.Response, error) {
	return CreateMockResponse(header, body)
}
