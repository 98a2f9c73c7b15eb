package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("maze: invalid option supplied")

// Option configures maze generation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the randomness source for Generate.
type Options struct {
	// Rand drives the candidate shuffle and corner-endpoint openings.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns Options seeded from the current time.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand uses rng for every random choice. A nil rng is a violation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = rng
	}
}

// WithSeed uses a fresh generator seeded with seed, making the maze
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// Stats summarizes one generation run.
type Stats struct {
	// Rooms is the number of cells left open by the lattice pass
	// (odd-odd rooms plus endpoints).
	Rooms int
	// Candidates is the number of removable walls considered.
	Candidates int
	// Removed is the number of walls knocked down, pre-opened endpoint
	// connections included.
	Removed int
}
