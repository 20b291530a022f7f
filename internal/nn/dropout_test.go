package nn

import (
	"testing"

	"github.com/skipnet-ml/skipnet/internal/backend/cpu"
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dropoutInputs(x *tensor.Tensor[float32, testBackend]) []*tensor.Tensor[float32, testBackend] {
	return []*tensor.Tensor[float32, testBackend]{x}
}

// TestDropout_InferenceScaling checks the deterministic keepProb*x
// output outside training.
func TestDropout_InferenceScaling(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.5, backend)

	input := newTensor(t, backend, tensor.Shape{3}, []float32{2, 4, -6})

	output, err := layer.Apply(dropoutInputs(input), Inference)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, -3}, output.Data())

	// The zero mode behaves the same.
	output, err = layer.Apply(dropoutInputs(input), Unspecified)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, -3}, output.Data())
}

// TestDropout_TrainingMask checks per-element draws: an alternating
// source keeps and drops alternating elements.
func TestDropout_TrainingMask(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.5, backend)
	// 0.1 keeps, 0.9 drops, repeating per element.
	layer.SetSource(random.NewSequence(0.1, 0.9))

	input := newTensor(t, backend, tensor.Shape{4}, []float32{10, 20, 30, 40})

	output, err := layer.Apply(dropoutInputs(input), Training)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 0, 30, 0}, output.Data())
}

// TestDropout_TrainingCertainties checks keepProb 1 and 0 in training.
func TestDropout_TrainingCertainties(t *testing.T) {
	backend := cpu.New()
	input := newTensor(t, backend, tensor.Shape{4}, []float32{1.5, -2, 0.25, 8})

	keepAll := NewDropout(1.0, backend)
	keepAll.SetSource(random.NewSource(5))
	output, err := keepAll.Apply(dropoutInputs(input), Training)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2, 0.25, 8}, output.Data())

	dropAll := NewDropout(0.0, backend)
	dropAll.SetSource(random.NewSource(5))
	output, err = dropAll.Apply(dropoutInputs(input), Training)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, output.Data())
}

// TestDropout_InputLength checks the arity error.
func TestDropout_InputLength(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.5, backend)
	x := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	output, err := layer.Apply(nil, Training)
	assert.Nil(t, output)
	assert.ErrorContains(t, err, "length=0")

	output, err = layer.Apply(pair(x, x), Training)
	assert.Nil(t, output)
	assert.ErrorContains(t, err, "length=2")
	assert.ErrorContains(t, err, LayerTypeDropout)
}

// TestDropout_PerElementDraws checks that training consumes one draw per
// element and deterministic modes consume none.
func TestDropout_PerElementDraws(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.5, backend)

	counter := &countingSource{src: random.NewSource(1)}
	layer.SetSource(counter)

	input := newTensor(t, backend, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	_, err := layer.Apply(dropoutInputs(input), Training)
	require.NoError(t, err)
	assert.Equal(t, 6, counter.draws)

	_, err = layer.Apply(dropoutInputs(input), Inference)
	require.NoError(t, err)
	assert.Equal(t, 6, counter.draws)
}

// TestDropout_ForwardUsesHeldMode checks the Module side: Forward obeys
// SetMode.
func TestDropout_ForwardUsesHeldMode(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.5, backend)
	layer.SetSource(random.Const(0.9)) // drops everything while training

	input := newTensor(t, backend, tensor.Shape{2}, []float32{2, 4})

	// Default mode is Unspecified: deterministic scaling.
	assert.Equal(t, Unspecified, layer.Mode())
	assert.Equal(t, []float32{1, 2}, layer.Forward(input).Data())

	layer.SetMode(Training)
	assert.Equal(t, Training, layer.Mode())
	assert.Equal(t, []float32{0, 0}, layer.Forward(input).Data())

	layer.SetMode(Inference)
	assert.Equal(t, []float32{1, 2}, layer.Forward(input).Data())
}

// TestDropout_InputNotModified checks that Apply leaves the input alone.
func TestDropout_InputNotModified(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.5, backend)
	layer.SetSource(random.NewSequence(0.1, 0.9))

	input := newTensor(t, backend, tensor.Shape{4}, []float32{10, 20, 30, 40})
	before := snapshot(input)

	for _, mode := range []Mode{Training, Inference, Unspecified} {
		_, err := layer.Apply(dropoutInputs(input), mode)
		require.NoError(t, err)
		assert.Equal(t, before, input.Data())
	}
}

// TestDropout_ConfigRoundTrip rebuilds the layer from its config.
func TestDropout_ConfigRoundTrip(t *testing.T) {
	backend := cpu.New()
	layer := NewDropout(0.9, backend)

	cfg := layer.Config()
	assert.Equal(t, Config{
		KeyLayerType:       LayerTypeDropout,
		KeyKeepProbability: 0.9,
	}, cfg)

	reg := NewRegistry[testBackend]()
	rebuilt, err := reg.Build(cfg, backend)
	require.NoError(t, err)

	clone, ok := rebuilt.(*Dropout[testBackend])
	require.True(t, ok, "expected *Dropout, got %T", rebuilt)
	assert.Equal(t, 0.9, clone.KeepProbability())
	assert.Equal(t, cfg, clone.Config())
}

// TestDropout_NoParameters checks the Module contract.
func TestDropout_NoParameters(t *testing.T) {
	layer := NewDropout(0.5, cpu.New())
	assert.Empty(t, layer.Parameters())
}
