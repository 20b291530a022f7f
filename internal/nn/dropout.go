package nn

import (
	"fmt"

	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Dropout randomly zeroes individual elements of its input during
// training.
//
// Each element is kept independently with probability keepProb; dropped
// elements become zero. Outside training the output is the input scaled
// by keepProb, which matches the expected value of the training output.
//
// Dropout is the element-wise counterpart of StochasticDepth: it draws
// once per element where StochasticDepth draws once per call.
//
// Dropout implements both Layer (explicit mode per Apply call) and
// Module (mode held via SetMode), so it can sit inside a Sequential:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(128, 64, backend),
//	    nn.NewDropout(0.9, backend),
//	)
//	model.SetMode(nn.Training)
type Dropout[B tensor.Backend] struct {
	keepProb float64
	src      random.Source
	mode     Mode
	backend  B
}

// NewDropout creates a Dropout layer.
//
// keepProb is the probability of keeping each element during training.
// The value is stored as given, without validation or clamping. The
// layer draws from a time-seeded source; use SetSource to inject a
// deterministic one.
func NewDropout[B tensor.Backend](keepProb float64, backend B) *Dropout[B] {
	return &Dropout[B]{
		keepProb: keepProb,
		src:      random.NewTimeSource(),
		backend:  backend,
	}
}

// SetSource replaces the layer's random source.
func (d *Dropout[B]) SetSource(src random.Source) {
	d.src = src
}

// KeepProbability returns the configured keep probability.
func (d *Dropout[B]) KeepProbability() float64 {
	return d.keepProb
}

// SetMode sets the mode used by Forward. Apply ignores it.
func (d *Dropout[B]) SetMode(mode Mode) {
	d.mode = mode
}

// Mode returns the mode used by Forward.
func (d *Dropout[B]) Mode() Mode {
	return d.mode
}

// Apply computes the dropout output for a single input tensor.
//
// inputs must hold exactly one tensor; any other count returns an error
// naming the received length. In Training mode every element is kept
// with probability keepProb and zeroed otherwise, each with its own
// draw. In other modes the input is scaled by keepProb with no draws.
//
// The input tensor is never modified.
func (d *Dropout[B]) Apply(inputs []*tensor.Tensor[float32, B], mode Mode) (*tensor.Tensor[float32, B], error) {
	if len(inputs) != 1 {
		return nil, errInputLength(LayerTypeDropout, 1, len(inputs))
	}
	input := inputs[0]

	if !mode.IsTraining() {
		return input.MulScalar(float32(d.keepProb)), nil
	}

	mask := tensor.Zeros[float32](input.Shape(), input.Backend())
	data := mask.Data()
	for i := range data {
		if random.Bernoulli(d.src, d.keepProb) {
			data[i] = 1
		}
	}
	// The mask is freshly allocated, so Mul may reuse it in place.
	return mask.Mul(input), nil
}

// Forward applies dropout using the mode set via SetMode.
//
// The zero mode is Unspecified, so a Dropout that never saw SetMode
// scales by its keep probability.
func (d *Dropout[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output, err := d.Apply([]*tensor.Tensor[float32, B]{input}, d.mode)
	if err != nil {
		// One input by construction.
		panic(fmt.Sprintf("Dropout.Forward: %v", err))
	}
	return output
}

// Parameters returns an empty slice (Dropout has no trainable parameters).
func (d *Dropout[B]) Parameters() []*Parameter[B] {
	return nil
}

// Config returns the serializable configuration of the layer.
func (d *Dropout[B]) Config() Config {
	cfg := NewBaseConfig(LayerTypeDropout)
	cfg[KeyKeepProbability] = d.keepProb
	return cfg
}
