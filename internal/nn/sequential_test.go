package nn

import (
	"testing"

	"github.com/skipnet-ml/skipnet/internal/backend/cpu"
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSequential_Forward chains module outputs in order.
func TestSequential_Forward(t *testing.T) {
	backend := cpu.New()
	model := NewSequential[testBackend](
		&scaleModule{factor: 2},
		&scaleModule{factor: 3},
	)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, -2})

	// 2*3 = 6x.
	output := model.Forward(input)
	assert.Equal(t, []float32{6, -12}, output.Data())
}

// TestSequential_ForwardEmpty returns the input unchanged.
func TestSequential_ForwardEmpty(t *testing.T) {
	backend := cpu.New()
	model := NewSequential[testBackend]()

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})
	assert.Same(t, input, model.Forward(input))
}

// TestSequential_Parameters concatenates parameters in module order.
func TestSequential_Parameters(t *testing.T) {
	backend := cpu.New()
	model := NewSequential[testBackend](
		NewLinear(4, 8, backend),
		NewReLU[testBackend](),
		NewLinear(8, 2, backend),
	)

	params := model.Parameters()
	require.Len(t, params, 4)
	assert.Equal(t, "weight", params[0].Name())
	assert.Equal(t, "bias", params[1].Name())
	assert.True(t, params[0].Tensor().Shape().Equal(tensor.Shape{4, 8}))
	assert.True(t, params[2].Tensor().Shape().Equal(tensor.Shape{8, 2}))
}

// TestSequential_AddLenModule grows the container incrementally.
func TestSequential_AddLenModule(t *testing.T) {
	model := NewSequential[testBackend]()
	assert.Equal(t, 0, model.Len())

	first := &scaleModule{factor: 2}
	second := &scaleModule{factor: 3}
	model.Add(first)
	model.Add(second)

	assert.Equal(t, 2, model.Len())
	assert.Same(t, first, model.Module(0))
	assert.Same(t, second, model.Module(1))

	assert.Panics(t, func() { model.Module(2) })
	assert.Panics(t, func() { model.Module(-1) })
}

// TestSequential_SetModePropagation reaches mode-aware modules, also
// through nested containers.
func TestSequential_SetModePropagation(t *testing.T) {
	backend := cpu.New()

	outer := NewDropout(0.5, backend)
	inner := NewDropout(0.5, backend)
	model := NewSequential[testBackend](
		&scaleModule{factor: 2},
		outer,
		NewSequential[testBackend](inner),
	)

	model.SetMode(Training)
	assert.Equal(t, Training, outer.Mode())
	assert.Equal(t, Training, inner.Mode())

	model.SetMode(Inference)
	assert.Equal(t, Inference, outer.Mode())
	assert.Equal(t, Inference, inner.Mode())
}

// TestSequential_TrainEvalRun runs a small stochastic model through both
// modes end to end.
func TestSequential_TrainEvalRun(t *testing.T) {
	backend := cpu.New()

	drop := NewDropout(0.5, backend)
	drop.SetSource(random.NewSequence(0.1, 0.9))
	model := NewSequential[testBackend](
		&scaleModule{factor: 2},
		drop,
	)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	// Evaluation first: 2x scaled by 0.5 is x.
	model.SetMode(Inference)
	assert.Equal(t, []float32{1, 2}, model.Forward(input).Data())

	// Training: the alternating source keeps the first element only.
	model.SetMode(Training)
	assert.Equal(t, []float32{2, 0}, model.Forward(input).Data())
}
