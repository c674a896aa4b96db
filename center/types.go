package center

import "errors"

// Strategy selects the algorithm used by Centers.
type Strategy int

const (
	// LeafTrimming peels leaves layer by layer until the center remains.
	LeafTrimming Strategy = iota

	// ViaEccentricity derives the center from the full eccentricity table.
	ViaEccentricity
)

// ErrUnknownStrategy is returned for a Strategy outside the declared set.
var ErrUnknownStrategy = errors.New("center: unknown strategy")

// Option configures optional behavior of Centers.
type Option func(*options)

// options holds configurable parameters for Centers.
type options struct {
	strategy Strategy
}

// defaultOptions returns the default configuration: LeafTrimming.
func defaultOptions() options {
	return options{strategy: LeafTrimming}
}

// WithStrategy selects the center-finding algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}
