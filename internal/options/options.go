// Package options implements functional options shared by drivers, the
// storage facade and value packages.
package options

// OptionConstructor returns the defaults options are applied on top of.
type OptionConstructor[T any] func() T

// OptionCallback modifies one setting.
type OptionCallback[T any] func(*T)

// ApplyOptions builds T from constructor defaults, or the zero value when
// constructor is nil, and applies cbs in order so later callbacks win.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
