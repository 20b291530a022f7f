package modeldef

import (
	"github.com/skipnet-ml/skipnet/internal/nn"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Build constructs every layer of a definition through the registry.
//
// The definition is validated first. A failing layer aborts the build
// and is reported as a LayerError carrying its index and type, wrapping
// the registry's error.
func Build[B tensor.Backend](def *Definition, reg *nn.Registry[B], backend B) ([]nn.Layer[B], error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	layers := make([]nn.Layer[B], 0, len(def.Layers))
	for i, cfg := range def.Layers {
		layer, err := reg.Build(cfg, backend)
		if err != nil {
			layerType, _ := cfg.LayerType()
			return nil, &LayerError{Index: i, Type: layerType, Err: err}
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// Describe folds live layers back into a definition.
//
// It is the inverse of Build for every layer whose Config round-trips,
// which holds for all built-in layers.
func Describe[B tensor.Backend](name string, layers []nn.Layer[B]) *Definition {
	configs := make([]nn.Config, 0, len(layers))
	for _, layer := range layers {
		configs = append(configs, layer.Config())
	}
	return New(name, configs...)
}
