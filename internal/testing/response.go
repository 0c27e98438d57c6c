package testing

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tarantool/go-tarantool/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// MockResponse is a tarantool.Response replaying a prepared msgpack body.
type MockResponse struct {
	header tarantool.Header
	data   []byte
}

var _ tarantool.Response = &MockResponse{} //nolint:exhaustruct

// NewMockResponse encodes body with msgpack and wraps it into a response
// with an empty header.
func NewMockResponse(t T, body any) *MockResponse {
	t.Helper()

	buf := bytes.NewBuffer(nil)

	err := msgpack.NewEncoder(buf).Encode(body)
	if err != nil {
		t.Errorf("failed to encode mock response: %s", err)
	}

	return &MockResponse{header: tarantool.Header{}, data: buf.Bytes()} //nolint:exhaustruct
}

// CreateMockResponse reads body into a new response with the given header.
func CreateMockResponse(header tarantool.Header, body io.Reader) (*MockResponse, error) {
	if body == nil {
		return &MockResponse{header: header, data: nil}, nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock response body: %w", err)
	}

	return &MockResponse{header: header, data: data}, nil
}

// Header returns the response header.
func (r *MockResponse) Header() tarantool.Header {
	return r.header
}

// Decode decodes the body as a slice.
func (r *MockResponse) Decode() ([]any, error) {
	if r.data == nil {
		return nil, nil
	}

	result, err := msgpack.NewDecoder(bytes.NewReader(r.data)).DecodeSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to decode mock response: %w", err)
	}

	return result, nil
}

// DecodeTyped decodes the body into res.
func (r *MockResponse) DecodeTyped(res any) error {
	if r.data == nil {
		return nil
	}

	err := msgpack.NewDecoder(bytes.NewReader(r.data)).Decode(res)
	if err != nil {
		return fmt.Errorf("failed to decode mock response: %w", err)
	}

	return nil
}
