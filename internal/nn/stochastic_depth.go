package nn

import (
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// StochasticDepth randomly drops the residual branch of a residual block
// during training.
//
// The layer takes two inputs: the shortcut branch and the residual
// branch. During training it draws once per call and either keeps the
// whole residual branch or drops it:
//
//	output = shortcut + residual    with probability survivalProb
//	output = shortcut               otherwise
//
// Outside training the layer is deterministic and scales the residual
// branch by its survival probability, the expected value of the training
// output:
//
//	output = shortcut + survivalProb * residual
//
// Dropping whole branches shortens the effective depth of the network on
// each training step, which regularizes very deep residual networks
// (Huang et al., "Deep Networks with Stochastic Depth", 2016). Unlike
// Dropout, the decision is shared by every element of the batch.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewStochasticDepth(0.8, backend)
//
//	output, err := layer.Apply(
//	    []*tensor.Tensor[float32, *cpu.CPUBackend]{shortcut, residual},
//	    nn.Training,
//	)
type StochasticDepth[B tensor.Backend] struct {
	survivalProb float64
	src          random.Source
	backend      B
}

// NewStochasticDepth creates a StochasticDepth layer.
//
// survivalProb is the probability of keeping the residual branch during
// training. The value is stored as given, without validation or
// clamping.
//
// The layer draws from a time-seeded source. Use SetSource to inject a
// deterministic one.
//
// Parameters:
//   - survivalProb: Probability of keeping the residual branch
//   - backend: Backend to use for tensor operations
//
// Returns a new StochasticDepth layer.
func NewStochasticDepth[B tensor.Backend](survivalProb float64, backend B) *StochasticDepth[B] {
	return &StochasticDepth[B]{
		survivalProb: survivalProb,
		src:          random.NewTimeSource(),
		backend:      backend,
	}
}

// SetSource replaces the layer's random source.
//
// Injecting a seeded source makes the training draws reproducible:
//
//	layer.SetSource(random.NewSource(42))
func (s *StochasticDepth[B]) SetSource(src random.Source) {
	s.src = src
}

// SurvivalProbability returns the configured survival probability.
func (s *StochasticDepth[B]) SurvivalProbability() float64 {
	return s.survivalProb
}

// Backend returns the backend the layer was constructed with.
func (s *StochasticDepth[B]) Backend() B {
	return s.backend
}

// Apply joins a shortcut branch and a residual branch.
//
// inputs must hold exactly two tensors of the same shape, the shortcut
// at index 0 and the residual at index 1. Any other input count returns
// an error naming the received length.
//
// In Training mode the layer draws once per call: the residual branch is
// either kept whole (output = shortcut + residual) or dropped whole
// (output = shortcut). In Inference mode, and for the zero Mode value,
// no draw happens and the output is the deterministic expectation
// shortcut + survivalProb*residual.
//
// The input tensors are never modified; repeated calls in a
// deterministic mode return equal results.
func (s *StochasticDepth[B]) Apply(inputs []*tensor.Tensor[float32, B], mode Mode) (*tensor.Tensor[float32, B], error) {
	if len(inputs) != 2 {
		return nil, errInputLength(LayerTypeStochasticDepth, 2, len(inputs))
	}
	shortcut, residual := inputs[0], inputs[1]

	if mode.IsTraining() {
		if !random.Bernoulli(s.src, s.survivalProb) {
			// Branch dropped. The clone shares the shortcut's buffer.
			return shortcut.Clone(), nil
		}
		// The extra handle keeps the shortcut's buffer shared, so Add
		// writes into a fresh tensor instead of reusing the caller's.
		guard := shortcut.Clone()
		defer guard.Release()
		return guard.Add(residual), nil
	}

	// MulScalar allocates, so the following Add may reuse that
	// intermediate in place without touching either input.
	scaled := residual.MulScalar(float32(s.survivalProb))
	return scaled.Add(shortcut), nil
}

// Config returns the serializable configuration of the layer.
//
// Building the returned config through a Registry reconstructs a layer
// with the same survival probability:
//
//	cfg := layer.Config()
//	// {"layer_type": "stochastic_depth", "survival_probability": 0.8}
//	clone, err := registry.Build(cfg, backend)
func (s *StochasticDepth[B]) Config() Config {
	cfg := NewBaseConfig(LayerTypeStochasticDepth)
	cfg[KeySurvivalProbability] = s.survivalProb
	return cfg
}
