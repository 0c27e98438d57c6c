// Package operation provides types and interfaces for storage operations.
// It defines operation types and configurations used in transactional contexts.
package operation

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvrange/internal/options"
	"github.com/tarantool/go-kvrange/keyrange"
	"github.com/tarantool/go-kvrange/rangequery"
)

// operationOptions contains configuration of an operation.
type operationOptions struct {
	Prefix bool // Treat the key as a prefix.
}

// Option is a function that configures an operation.
type Option = options.OptionCallback[operationOptions]

// WithPrefix makes get and delete operations affect every key starting with the key.
func WithPrefix() Option {
	return func(opts *operationOptions) {
		opts.Prefix = true
	}
}

// Operation represents a storage operation to be executed.
// This is used within transactions and other operation contexts.
type Operation struct {
	typ     Type
	key     []byte
	value   []byte
	options []Option
	query   option.Generic[rangequery.Query]
}

func newOperation(typ Type, key, value []byte, opts []Option) Operation {
	return Operation{
		typ:     typ,
		key:     key,
		value:   value,
		options: opts,
		query:   option.None[rangequery.Query](),
	}
}

// Get creates a read operation for a key.
func Get(key []byte, opts ...Option) Operation {
	return newOperation(TypeGet, key, nil, opts)
}

// Put creates a write operation.
func Put(key, value []byte, opts ...Option) Operation {
	return newOperation(TypePut, key, value, opts)
}

// Delete creates a delete operation for a key.
func Delete(key []byte, opts ...Option) Operation {
	return newOperation(TypeDelete, key, nil, opts)
}

// Range creates a read operation carrying a complete range query.
func Range(query rangequery.Query) Operation {
	return Operation{
		typ:     TypeRange,
		key:     query.KeyRange().Key,
		value:   nil,
		options: nil,
		query:   option.Some(query),
	}
}

// Type returns the operation type.
func (o Operation) Type() Type {
	return o.typ
}

// Key returns the target key.
func (o Operation) Key() []byte {
	return o.key
}

// Value returns the data of a put operation, nil otherwise.
func (o Operation) Value() []byte {
	return o.value
}

// Options returns the options the operation was created with.
func (o Operation) Options() []Option {
	return o.options
}

// IsPrefix reports whether the operation affects every key starting with Key.
func (o Operation) IsPrefix() bool {
	return options.ApplyOptions(nil, o.options).Prefix
}

// Query returns the range query of the operation.
// Get operations are expressed as queries too: a single key or a prefix interval.
func (o Operation) Query() rangequery.Query {
	fallback := rangequery.New(keyrange.Single(o.key))
	if o.IsPrefix() {
		fallback = rangequery.New(keyrange.Prefix(o.key))
	}

	return o.query.UnwrapOr(fallback)
}
