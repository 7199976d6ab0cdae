// SPDX-License-Identifier: MIT

// Package vector: functional configuration for constructors.
//
// Option setters only record values; New/NewFrom validate the gathered
// Options and report nonsensical values as errors (ErrInvalidStart), so that a
// bad start index is a returned error rather than a panic.
package vector

// DefaultStart is the start index used when WithStart is not given.
const DefaultStart = 0

// Option mutates constructor options. Safe to apply repeatedly; the last write wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	start int // first valid external index; DefaultStart
}

// WithStart sets the first valid external index of the vector.
// A negative value makes the constructor fail with ErrInvalidStart.
func WithStart(start int) Option {
	return func(o *Options) {
		o.start = start
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{start: DefaultStart}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
