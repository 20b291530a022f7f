// Package random provides the pseudo-random sources used by stochastic layers.
//
// Layers take a Source instead of reading global process randomness, so
// tests can pin every draw and training runs can be replayed from a seed.
package random

import (
	"math/rand"
	"time"
)

// Source produces uniform random numbers in [0, 1).
//
// Implementations are not required to be safe for concurrent use. A layer
// that is applied from multiple goroutines needs one Source per goroutine.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source seeded with the given value.
// Two sources with the same seed produce identical streams.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
}

// NewTimeSource returns a Source seeded from the current time.
func NewTimeSource() Source {
	return NewSource(time.Now().UnixNano())
}

// Bernoulli draws once from a Bernoulli distribution with success
// probability p. Since Float64 never returns 1.0, p = 1 always succeeds
// and p = 0 never does, with no special casing.
func Bernoulli(src Source, p float64) bool {
	return src.Float64() < p
}

// Const is a Source that always returns the same value.
//
// It pins Bernoulli outcomes in tests: a value below the success
// probability succeeds, a value at or above it fails.
type Const float64

// Float64 returns the constant value.
func (c Const) Float64() float64 {
	return float64(c)
}

// Sequence is a Source that replays a fixed series of values, cycling
// back to the start when exhausted.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence over the given values.
// Panics if no values are provided.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("random: NewSequence requires at least one value")
	}
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
