package nn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Registry errors.
var (
	// ErrDuplicateLayerType is returned by Register when the type id is
	// already taken.
	ErrDuplicateLayerType = errors.New("layer type already registered")

	// ErrUnknownLayerType is returned by Build when no builder exists for
	// the config's type id.
	ErrUnknownLayerType = errors.New("unknown layer type")
)

// Builder constructs a layer from its config.
//
// Builders read their keys from cfg and fall back to defaults for absent
// keys. They return an error for values of the wrong type, never for
// values outside a numeric range.
type Builder[B tensor.Backend] func(cfg Config, backend B) (Layer[B], error)

// Registry maps layer type ids to builders, so models described by
// configs can be reconstructed without knowing concrete types.
//
// Example:
//
//	reg := nn.NewRegistry[*cpu.CPUBackend]()
//	layer, err := reg.Build(nn.Config{
//	    "layer_type":           "stochastic_depth",
//	    "survival_probability": 0.8,
//	}, backend)
type Registry[B tensor.Backend] struct {
	builders map[string]Builder[B]
}

// NewRegistry creates a Registry with the built-in layer types
// registered: stochastic_depth, dropout and residual_add.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	r := &Registry[B]{builders: make(map[string]Builder[B])}
	r.builders[LayerTypeStochasticDepth] = buildStochasticDepth[B]
	r.builders[LayerTypeDropout] = buildDropout[B]
	r.builders[LayerTypeResidualAdd] = buildResidualAdd[B]
	return r
}

// Register adds a builder for a new layer type.
//
// Returns ErrDuplicateLayerType if the type id is already registered;
// built-in types cannot be replaced.
func (r *Registry[B]) Register(layerType string, builder Builder[B]) error {
	if _, exists := r.builders[layerType]; exists {
		return fmt.Errorf("layer type %q: %w", layerType, ErrDuplicateLayerType)
	}
	r.builders[layerType] = builder
	return nil
}

// Build constructs a layer from its config.
//
// The config must carry a string "layer_type" key naming a registered
// builder. Returns ErrUnknownLayerType for unregistered type ids.
func (r *Registry[B]) Build(cfg Config, backend B) (Layer[B], error) {
	layerType, ok := cfg.LayerType()
	if !ok {
		return nil, fmt.Errorf("config has no %q key", KeyLayerType)
	}
	builder, ok := r.builders[layerType]
	if !ok {
		return nil, fmt.Errorf("layer type %q: %w", layerType, ErrUnknownLayerType)
	}
	return builder(cfg, backend)
}

// Types returns the registered layer type ids in sorted order.
func (r *Registry[B]) Types() []string {
	types := make([]string, 0, len(r.builders))
	for layerType := range r.builders {
		types = append(types, layerType)
	}
	sort.Strings(types)
	return types
}

// floatKey reads a numeric config key with a default, erroring on values
// that are present but not numeric.
func floatKey(cfg Config, layerType, key string, fallback float64) (float64, error) {
	raw, present := cfg[key]
	if !present {
		return fallback, nil
	}
	v, ok := cfg.Float(key)
	if !ok {
		return 0, fmt.Errorf("%s: %s must be a number, got %T", layerType, key, raw)
	}
	return v, nil
}

func buildStochasticDepth[B tensor.Backend](cfg Config, backend B) (Layer[B], error) {
	p, err := floatKey(cfg, LayerTypeStochasticDepth, KeySurvivalProbability, DefaultSurvivalProbability)
	if err != nil {
		return nil, err
	}
	return NewStochasticDepth(p, backend), nil
}

func buildDropout[B tensor.Backend](cfg Config, backend B) (Layer[B], error) {
	p, err := floatKey(cfg, LayerTypeDropout, KeyKeepProbability, DefaultKeepProbability)
	if err != nil {
		return nil, err
	}
	return NewDropout(p, backend), nil
}

func buildResidualAdd[B tensor.Backend](cfg Config, backend B) (Layer[B], error) {
	// A residual join is a plain addition unless the config lowers the
	// survival probability.
	p, err := floatKey(cfg, LayerTypeResidualAdd, KeySurvivalProbability, 1.0)
	if err != nil {
		return nil, err
	}
	return newResidualAddWithSurvival(p, backend), nil
}
