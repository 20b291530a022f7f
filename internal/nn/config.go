package nn

// Config keys shared by the built-in layers.
const (
	// KeyLayerType names the layer type id in every config.
	KeyLayerType = "layer_type"

	// KeyName is an optional human-readable layer name.
	KeyName = "name"

	// KeySurvivalProbability configures StochasticDepth and ResidualAdd.
	KeySurvivalProbability = "survival_probability"

	// KeyKeepProbability configures Dropout.
	KeyKeepProbability = "keep_probability"
)

// Type ids of the built-in layers, pre-registered by NewRegistry.
const (
	LayerTypeStochasticDepth = "stochastic_depth"
	LayerTypeDropout         = "dropout"
	LayerTypeResidualAdd     = "residual_add"
)

// DefaultSurvivalProbability is used when a stochastic_depth config omits
// the survival probability.
const DefaultSurvivalProbability = 0.5

// DefaultKeepProbability is used when a dropout config omits the keep
// probability.
const DefaultKeepProbability = 0.5

// Config is the serializable configuration of a layer.
//
// A config always carries the "layer_type" key; everything else is
// layer-specific. Configs round-trip through JSON and YAML, so the typed
// accessors accept the representations those decoders produce: JSON
// decodes every number to float64, YAML decodes whole numbers to int.
type Config map[string]any

// NewBaseConfig returns the minimal config for a layer type.
//
// Layers extend it with their own keys:
//
//	cfg := nn.NewBaseConfig(nn.LayerTypeDropout)
//	cfg[nn.KeyKeepProbability] = 0.9
func NewBaseConfig(layerType string) Config {
	return Config{KeyLayerType: layerType}
}

// LayerType returns the layer type id, if present.
func (c Config) LayerType() (string, bool) {
	return c.String(KeyLayerType)
}

// Float returns the value under key as a float64.
//
// Accepts float64, float32, int and int64 values, so configs decoded
// from JSON (float64 numbers) and YAML (int for whole numbers) both
// work. Returns false if the key is absent or not numeric.
func (c Config) Float(key string) (float64, bool) {
	switch v := c[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// FloatOr returns the value under key as a float64, or fallback if the
// key is absent or not numeric.
func (c Config) FloatOr(key string, fallback float64) float64 {
	if v, ok := c.Float(key); ok {
		return v
	}
	return fallback
}

// Int returns the value under key as an int.
//
// Accepts int, int64 and float64 values; float64 values are truncated.
// Returns false if the key is absent or not numeric.
func (c Config) Int(key string) (int, bool) {
	switch v := c[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// String returns the value under key as a string.
// Returns false if the key is absent or not a string.
func (c Config) String(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}

// Bool returns the value under key as a bool.
// Returns false if the key is absent or not a bool.
func (c Config) Bool(key string) (bool, bool) {
	v, ok := c[key].(bool)
	return v, ok
}

// Clone returns a shallow copy of the config.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
