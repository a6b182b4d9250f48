// Package sssp defines sentinel errors and the functional options accepted by
// the shortest-path driver.
package sssp

import "errors"

// Sentinel errors returned (or panicked, for option constructors) by the driver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrSourceOutOfRange indicates that the source vertex is outside [0, n).
	ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

	// ErrBadPivotThreshold indicates a WithPivotThreshold argument below 2.
	// The recursion needs k ≥ 2: a pivot witnesses a subtree of at least k
	// working vertices, and the base case settles up to k+1.
	ErrBadPivotThreshold = errors.New("sssp: pivot threshold must be at least 2")

	// ErrBadLevelExponent indicates a WithLevelExponent argument below 1.
	ErrBadLevelExponent = errors.New("sssp: level exponent must be at least 1")
)

// Options configures a shortest-path computation.
//
// PivotThreshold – override for the derived k (0 = derive from n).
// LevelExponent  – override for the derived t (0 = derive from n).
//
// The overrides exist so tests can force deep recursion and tiny frontier
// blocks on graphs far smaller than the asymptotic regime; production callers
// normally pass no options and let the driver derive both.
type Options struct {
	PivotThreshold int
	LevelExponent  int
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns an Options with both parameters derived from n.
func DefaultOptions() Options {
	return Options{}
}

// WithPivotThreshold overrides the derived k. Must be ≥ 2; smaller values
// panic with ErrBadPivotThreshold.
func WithPivotThreshold(k int) Option {
	if k < 2 {
		panic(ErrBadPivotThreshold)
	}

	return func(o *Options) {
		o.PivotThreshold = k
	}
}

// WithLevelExponent overrides the derived t. Must be ≥ 1; smaller values
// panic with ErrBadLevelExponent.
func WithLevelExponent(t int) Option {
	if t < 1 {
		panic(ErrBadLevelExponent)
	}

	return func(o *Options) {
		o.LevelExponent = t
	}
}
