package nn

import (
	"fmt"

	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// ResidualAdd is the additive join of a residual block, expressed as a
// two-input layer: output = shortcut + residual.
//
// It is a StochasticDepth join with survival probability 1, so by
// default the addition is exact in every mode. Configs built through the
// registry may lower the survival probability, which turns the join into
// a stochastic one.
type ResidualAdd[B tensor.Backend] struct {
	depth *StochasticDepth[B]
}

// NewResidualAdd creates a plain additive join with survival
// probability 1.
func NewResidualAdd[B tensor.Backend](backend B) *ResidualAdd[B] {
	return newResidualAddWithSurvival(1.0, backend)
}

func newResidualAddWithSurvival[B tensor.Backend](survivalProb float64, backend B) *ResidualAdd[B] {
	return &ResidualAdd[B]{depth: NewStochasticDepth(survivalProb, backend)}
}

// SetSource replaces the join's random source.
func (r *ResidualAdd[B]) SetSource(src random.Source) {
	r.depth.SetSource(src)
}

// SurvivalProbability returns the join's survival probability.
func (r *ResidualAdd[B]) SurvivalProbability() float64 {
	return r.depth.SurvivalProbability()
}

// Apply adds the residual branch onto the shortcut branch.
//
// inputs must hold exactly two tensors, the shortcut at index 0 and the
// residual at index 1; any other count returns an error naming the
// received length.
func (r *ResidualAdd[B]) Apply(inputs []*tensor.Tensor[float32, B], mode Mode) (*tensor.Tensor[float32, B], error) {
	if len(inputs) != 2 {
		return nil, errInputLength(LayerTypeResidualAdd, 2, len(inputs))
	}
	return r.depth.Apply(inputs, mode)
}

// Config returns the serializable configuration of the layer.
func (r *ResidualAdd[B]) Config() Config {
	cfg := NewBaseConfig(LayerTypeResidualAdd)
	cfg[KeySurvivalProbability] = r.depth.SurvivalProbability()
	return cfg
}

// Residual wraps a module with a skip connection joined by
// StochasticDepth.
//
// Forward computes body(x) and adds it onto the shortcut:
//
//	output = x + body(x)
//
// subject to the join's survival probability: during training the body's
// contribution is dropped whole with probability 1-survivalProb, and
// outside training it is scaled by survivalProb. With survivalProb 1 the
// block is a classic residual connection.
//
// An optional projection maps the input to the body's output shape when
// the two differ (the 1x1 shortcut convolution of ResNets, here any
// module):
//
//	output = projection(x) + body(x)
//
// Example:
//
//	block := nn.NewResidual[Backend](
//	    nn.NewSequential[Backend](
//	        nn.NewLinear(64, 64, backend),
//	        nn.NewReLU[Backend](),
//	    ),
//	    0.9,
//	    backend,
//	)
//	block.SetMode(nn.Training)
type Residual[B tensor.Backend] struct {
	body       Module[B]
	projection Module[B]
	depth      *StochasticDepth[B]
	mode       Mode
}

// NewResidual creates a residual block with an identity shortcut.
//
// Parameters:
//   - body: Module computing the residual branch
//   - survivalProb: Probability of keeping the branch during training
//   - backend: Backend to use for tensor operations
//
// Returns a new Residual block.
func NewResidual[B tensor.Backend](body Module[B], survivalProb float64, backend B) *Residual[B] {
	return &Residual[B]{
		body:  body,
		depth: NewStochasticDepth(survivalProb, backend),
	}
}

// NewResidualWithProjection creates a residual block whose shortcut is
// computed by a projection module instead of the identity.
func NewResidualWithProjection[B tensor.Backend](body, projection Module[B], survivalProb float64, backend B) *Residual[B] {
	return &Residual[B]{
		body:       body,
		projection: projection,
		depth:      NewStochasticDepth(survivalProb, backend),
	}
}

// Forward computes the residual block output for the current mode.
func (r *Residual[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shortcut := input
	if r.projection != nil {
		shortcut = r.projection.Forward(input)
	}
	residual := r.body.Forward(input)

	output, err := r.depth.Apply([]*tensor.Tensor[float32, B]{shortcut, residual}, r.mode)
	if err != nil {
		// Two inputs by construction.
		panic(fmt.Sprintf("Residual.Forward: %v", err))
	}
	return output
}

// Parameters returns the body's parameters followed by the projection's.
func (r *Residual[B]) Parameters() []*Parameter[B] {
	params := append([]*Parameter[B]{}, r.body.Parameters()...)
	if r.projection != nil {
		params = append(params, r.projection.Parameters()...)
	}
	return params
}

// SetMode switches the block between training and inference behavior,
// propagating the mode to the body and projection.
func (r *Residual[B]) SetMode(mode Mode) {
	r.mode = mode
	if setter, ok := r.body.(ModeSetter); ok {
		setter.SetMode(mode)
	}
	if r.projection != nil {
		if setter, ok := r.projection.(ModeSetter); ok {
			setter.SetMode(mode)
		}
	}
}

// Mode returns the mode used by Forward.
func (r *Residual[B]) Mode() Mode {
	return r.mode
}

// SetSource replaces the join's random source.
func (r *Residual[B]) SetSource(src random.Source) {
	r.depth.SetSource(src)
}

// SurvivalProbability returns the join's survival probability.
func (r *Residual[B]) SurvivalProbability() float64 {
	return r.depth.SurvivalProbability()
}

// Config returns the configuration of the block's join. The body and
// projection are code, not configuration, and are not recorded.
func (r *Residual[B]) Config() Config {
	cfg := NewBaseConfig(LayerTypeResidualAdd)
	cfg[KeySurvivalProbability] = r.depth.SurvivalProbability()
	return cfg
}
