// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the randomness sources used by stochastic layers.
//
// The Source interface decouples layers from any particular generator, so
// tests can inject deterministic sequences and hosts can share a seeded
// stream across a whole model.
//
// Example:
//
//	src := random.NewSource(42)
//	layer := nn.NewStochasticDepth(0.8, backend)
//	layer.SetSource(src)
package random

import (
	"github.com/skipnet-ml/skipnet/internal/random"
)

// Source produces uniform random values in [0, 1).
//
// math/rand.Rand satisfies this interface, as do the deterministic
// Const and Sequence helpers.
type Source = random.Source

// Const is a Source that always returns the same value.
//
// Example:
//
//	layer.SetSource(random.Const(0.1))  // every draw is 0.1
type Const = random.Const

// Sequence is a Source that cycles through a fixed list of values.
type Sequence = random.Sequence

// NewSource returns a seeded pseudo-random Source.
//
// The same seed always produces the same stream, which makes stochastic
// layers reproducible.
func NewSource(seed int64) Source {
	return random.NewSource(seed)
}

// NewTimeSource returns a Source seeded from the current time.
func NewTimeSource() Source {
	return random.NewTimeSource()
}

// NewSequence returns a Source that cycles through values in order.
//
// Example:
//
//	src := random.NewSequence(0.1, 0.9)  // alternates below/above 0.5
func NewSequence(values ...float64) *Sequence {
	return random.NewSequence(values...)
}

// Bernoulli draws once from src and reports whether the draw landed
// below p. With p = 1 the result is always true, with p = 0 always false.
func Bernoulli(src Source, p float64) bool {
	return random.Bernoulli(src, p)
}
