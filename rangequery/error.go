package rangequery

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMetadata is returned when a reply has no response header.
	ErrMissingMetadata = errors.New("missing response metadata")
	// ErrMalformedEntry is returned when a key-value pair of a reply fails validation.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrInvalidCount is returned when a reply carries a negative count.
	ErrInvalidCount = errors.New("invalid count")
	// ErrEmptyKey is returned by Validate for a query without a key.
	ErrEmptyKey = errors.New("key is empty")
)

// DecodingError is returned when a raw reply cannot be converted into a Result.
type DecodingError struct {
	ObjectType string
	Text       string
	Err        error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("failed to decode %s: %s", e.ObjectType, e.Err)
	}

	return fmt.Sprintf("failed to decode %s, %s: %s", e.ObjectType, e.Text, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

func newResponseDecodingError(text string, err error) error {
	return DecodingError{
		ObjectType: "range response",
		Text:       text,
		Err:        err,
	}
}

// MalformedEntryError identifies the pair of a reply that failed validation.
// It matches ErrMalformedEntry and the underlying cause with errors.Is.
type MalformedEntryError struct {
	Index int
	Err   error
}

// Error returns the error message.
func (e MalformedEntryError) Error() string {
	return fmt.Sprintf("%s #%d: %s", ErrMalformedEntry, e.Index, e.Err)
}

func (e MalformedEntryError) Unwrap() []error {
	return []error{ErrMalformedEntry, e.Err}
}

// ConfigurationError is returned when a query is not fit to be sent.
type ConfigurationError struct {
	Field string
	Err   error
}

// Error returns the error message.
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid range query %s: %s", e.Field, e.Err)
}

func (e ConfigurationError) Unwrap() error {
	return e.Err
}
