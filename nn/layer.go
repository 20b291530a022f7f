// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/skipnet-ml/skipnet/internal/nn"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Layer is the interface for layers that consume a variable number of
// inputs and can describe their own configuration.
//
// Apply computes the layer output for the given inputs and mode. Config
// returns a map from which the Registry can rebuild an equivalent layer.
type Layer[B tensor.Backend] = nn.Layer[B]

// Config holds the construction arguments of a layer as plain values,
// suitable for JSON or YAML round trips.
type Config = nn.Config

// Well-known configuration keys.
const (
	KeyLayerType           = nn.KeyLayerType
	KeyName                = nn.KeyName
	KeySurvivalProbability = nn.KeySurvivalProbability
	KeyKeepProbability     = nn.KeyKeepProbability
)

// Registered layer type names.
const (
	LayerTypeStochasticDepth = nn.LayerTypeStochasticDepth
	LayerTypeDropout         = nn.LayerTypeDropout
	LayerTypeResidualAdd     = nn.LayerTypeResidualAdd
)

// Default probabilities used when a config omits the corresponding key.
const (
	DefaultSurvivalProbability = nn.DefaultSurvivalProbability
	DefaultKeepProbability     = nn.DefaultKeepProbability
)

// NewBaseConfig returns a Config holding only the layer type.
func NewBaseConfig(layerType string) Config {
	return nn.NewBaseConfig(layerType)
}

// Registry errors.
var (
	ErrDuplicateLayerType = nn.ErrDuplicateLayerType
	ErrUnknownLayerType   = nn.ErrUnknownLayerType
)

// Builder constructs a layer from its configuration.
type Builder[B tensor.Backend] = nn.Builder[B]

// Registry maps layer type names to builders.
//
// A new registry already knows the built-in layer types, so reconstructing
// a saved model needs no registration calls unless custom layers are
// involved.
type Registry[B tensor.Backend] = nn.Registry[B]

// NewRegistry creates a registry with the built-in layer types
// registered.
//
// Example:
//
//	reg := nn.NewRegistry[*cpu.Backend]()
//	layer, err := reg.Build(cfg, backend)
func NewRegistry[B tensor.Backend]() *Registry[B] {
	return nn.NewRegistry[B]()
}
