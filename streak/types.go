// Package streak defines configuration options and sentinel errors for
// the streak-constrained shortest-path engine.
package streak

import (
	"errors"
	"math"
)

// Sentinel errors returned by the streak engine.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("streak: grid is nil")

	// ErrStreakBounds indicates an invalid run-length window:
	// MinStreak must be ≥ 1 and MinStreak must be ≤ MaxStreak.
	ErrStreakBounds = errors.New("streak: require 1 <= MinStreak <= MaxStreak")

	// ErrOutOfBounds indicates that the start or end coordinate lies
	// outside the grid.
	ErrOutOfBounds = errors.New("streak: start and end must be inside the grid")

	// ErrNoPath indicates that no route from start to end satisfies the
	// streak constraints. It is an expected outcome, not a fault: callers
	// should branch on it with errors.Is and treat it as routine data.
	ErrNoPath = errors.New("streak: no path satisfies the streak constraints")
)

// NoPath is the batch sentinel cost: ShortestPathMany reports it for a
// query whose route does not exist instead of failing the whole batch.
const NoPath int64 = -1

// Options configures the streak-constrained search.
//
// MinStreak – minimum straight run, in cells, before a turn or a stop is
//
//	allowed. Must be ≥ 1. Default 1 (turn any time).
//
// MaxStreak – maximum straight run before a turn is forced.
//
//	Must be ≥ MinStreak. Default math.MaxInt (never forced).
type Options struct {
	MinStreak int // minimum run length before turning or stopping
	MaxStreak int // maximum run length before a turn is forced
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMinStreak requires every straight run — including the final one
// arriving at the target — to span at least n cells.
// Must pass n ≥ 1; other values cause a panic with ErrStreakBounds.
func WithMinStreak(n int) Option {
	return func(o *Options) {
		if n < 1 {
			// Panic to signal invalid configuration early, as option
			// constructors in this module do for nonsensical arguments.
			panic(ErrStreakBounds.Error())
		}
		o.MinStreak = n
	}
}

// WithMaxStreak forbids straight runs longer than n cells.
// Must pass n ≥ 1; other values cause a panic with ErrStreakBounds.
// Consistency with MinStreak is validated at call time.
func WithMaxStreak(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrStreakBounds.Error())
		}
		o.MaxStreak = n
	}
}

// DefaultOptions returns the neutral configuration: turns allowed at any
// time (MinStreak=1) and runs of unbounded length (MaxStreak=MaxInt).
// With these defaults the search degenerates to ordinary grid Dijkstra,
// minus 180° reversals.
func DefaultOptions() Options {
	return Options{
		MinStreak: 1,
		MaxStreak: math.MaxInt,
	}
}

// validate checks the combined option set once, before the search loop,
// so the hot loop itself carries no input checks.
func (o Options) validate() error {
	if o.MinStreak < 1 || o.MinStreak > o.MaxStreak {
		return ErrStreakBounds
	}

	return nil
}
