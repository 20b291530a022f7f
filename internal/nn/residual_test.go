package nn

import (
	"testing"

	"github.com/skipnet-ml/skipnet/internal/backend/cpu"
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResidualAdd_PlainAddition checks that the default join is an exact
// addition in every mode.
func TestResidualAdd_PlainAddition(t *testing.T) {
	backend := cpu.New()
	layer := NewResidualAdd(backend)
	assert.Equal(t, 1.0, layer.SurvivalProbability())

	shortcut := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})
	residual := newTensor(t, backend, tensor.Shape{2}, []float32{10, 20})

	for _, mode := range []Mode{Training, Inference, Unspecified} {
		output, err := layer.Apply(pair(shortcut, residual), mode)
		require.NoError(t, err)
		assert.Equal(t, []float32{11, 22}, output.Data(), "mode %s", mode)
	}
}

// TestResidualAdd_InputLength checks that the arity error names the
// residual_add type.
func TestResidualAdd_InputLength(t *testing.T) {
	backend := cpu.New()
	layer := NewResidualAdd(backend)
	x := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	output, err := layer.Apply([]*tensor.Tensor[float32, testBackend]{x}, Inference)
	assert.Nil(t, output)
	assert.ErrorContains(t, err, "length=1")
	assert.ErrorContains(t, err, LayerTypeResidualAdd)
}

// TestResidualAdd_ConfigRoundTrip rebuilds a stochastic join through the
// registry.
func TestResidualAdd_ConfigRoundTrip(t *testing.T) {
	backend := cpu.New()
	reg := NewRegistry[testBackend]()

	layer, err := reg.Build(Config{
		KeyLayerType:           LayerTypeResidualAdd,
		KeySurvivalProbability: 0.7,
	}, backend)
	require.NoError(t, err)

	join, ok := layer.(*ResidualAdd[testBackend])
	require.True(t, ok, "expected *ResidualAdd, got %T", layer)
	assert.Equal(t, 0.7, join.SurvivalProbability())
	assert.Equal(t, Config{
		KeyLayerType:           LayerTypeResidualAdd,
		KeySurvivalProbability: 0.7,
	}, join.Config())
}

// TestResidual_ForwardIdentityShortcut checks output = x + body(x).
func TestResidual_ForwardIdentityShortcut(t *testing.T) {
	backend := cpu.New()
	block := NewResidual[testBackend](&scaleModule{factor: 2}, 1.0, backend)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	// x + 2x = 3x in the default deterministic mode.
	output := block.Forward(input)
	assert.Equal(t, []float32{3, 6}, output.Data())
}

// TestResidual_SurvivalScalesBody checks the deterministic scaling of
// the body's contribution.
func TestResidual_SurvivalScalesBody(t *testing.T) {
	backend := cpu.New()
	block := NewResidual[testBackend](&scaleModule{factor: 2}, 0.5, backend)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	// x + 0.5*2x = 2x.
	output := block.Forward(input)
	assert.Equal(t, []float32{2, 4}, output.Data())
}

// TestResidual_TrainingOutcomes drives the block through keep and drop.
func TestResidual_TrainingOutcomes(t *testing.T) {
	backend := cpu.New()
	block := NewResidual[testBackend](&scaleModule{factor: 2}, 0.5, backend)
	block.SetSource(random.NewSequence(0.4, 0.6))
	block.SetMode(Training)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	// First draw keeps: x + 2x.
	assert.Equal(t, []float32{3, 6}, block.Forward(input).Data())
	// Second draw drops: x alone.
	assert.Equal(t, []float32{1, 2}, block.Forward(input).Data())
}

// TestResidual_WithProjection checks output = projection(x) + body(x).
func TestResidual_WithProjection(t *testing.T) {
	backend := cpu.New()
	block := NewResidualWithProjection[testBackend](
		&scaleModule{factor: 2},
		&scaleModule{factor: 3},
		1.0,
		backend,
	)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	// 3x + 2x = 5x.
	output := block.Forward(input)
	assert.Equal(t, []float32{5, 10}, output.Data())
}

// TestResidual_ModePropagation checks that SetMode reaches modules
// nested in the body and projection.
func TestResidual_ModePropagation(t *testing.T) {
	backend := cpu.New()

	body := NewDropout(0.5, backend)
	body.SetSource(random.Const(0.9)) // drops everything while training

	block := NewResidual[testBackend](body, 1.0, backend)

	input := newTensor(t, backend, tensor.Shape{2}, []float32{2, 4})

	// Unspecified: body scales by 0.5, block adds: x + 0.5x = 1.5x.
	assert.Equal(t, []float32{3, 6}, block.Forward(input).Data())

	block.SetMode(Training)
	assert.Equal(t, Training, block.Mode())
	assert.Equal(t, Training, body.Mode())
	// Body drops everything, join keeps: x + 0 = x.
	assert.Equal(t, []float32{2, 4}, block.Forward(input).Data())

	block.SetMode(Inference)
	assert.Equal(t, Inference, body.Mode())
	assert.Equal(t, []float32{3, 6}, block.Forward(input).Data())
}

// TestResidual_Parameters collects body and projection parameters.
func TestResidual_Parameters(t *testing.T) {
	backend := cpu.New()

	plain := NewResidual[testBackend](NewLinear(2, 2, backend), 1.0, backend)
	assert.Len(t, plain.Parameters(), 2)

	projected := NewResidualWithProjection[testBackend](
		NewLinear(2, 4, backend),
		NewLinear(2, 4, backend),
		1.0,
		backend,
	)
	assert.Len(t, projected.Parameters(), 4)
}

// TestResidual_Config records the join configuration only.
func TestResidual_Config(t *testing.T) {
	backend := cpu.New()
	block := NewResidual[testBackend](&scaleModule{factor: 2}, 0.6, backend)

	assert.Equal(t, Config{
		KeyLayerType:           LayerTypeResidualAdd,
		KeySurvivalProbability: 0.6,
	}, block.Config())
	assert.Equal(t, 0.6, block.SurvivalProbability())
}
