package watch

import "github.com/tarantool/go-kvrange/internal/options"

// Options contains configuration options for watch operations.
type Options struct {
	Prefix bool // Watch every key starting with the watched key.
}

// Option is a function that configures watch operation options.
type Option = options.OptionCallback[Options]

// WithPrefix watches every key starting with the watched key.
func WithPrefix() Option {
	return func(opts *Options) {
		opts.Prefix = true
	}
}

// Apply collects opts into Options.
func Apply(opts []Option) Options {
	return options.ApplyOptions(nil, opts)
}
