package nn

import (
	"math"
	"testing"

	"github.com/skipnet-ml/skipnet/internal/backend/cpu"
	"github.com/skipnet-ml/skipnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinear_Forward checks y = x @ W + b with hand-set parameters.
func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(2, 3, backend)

	// W: [[1, 2, 3], [4, 5, 6]] in the [in_features, out_features] layout.
	copy(layer.Weight().Tensor().Data(), []float32{1, 2, 3, 4, 5, 6})
	copy(layer.Bias().Tensor().Data(), []float32{10, 20, 30})

	input := newTensor(t, backend, tensor.Shape{2, 2}, []float32{
		1, 2,
		0, 1,
	})

	output := layer.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{2, 3}))

	// Row 0: [1*1+2*4, 1*2+2*5, 1*3+2*6] + b = [19, 32, 45]
	// Row 1: [4, 5, 6] + b = [14, 25, 36]
	assert.Equal(t, []float32{19, 32, 45, 14, 25, 36}, output.Data())
}

// TestLinear_ParametersAndShapes checks the parameter layout.
func TestLinear_ParametersAndShapes(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(4, 8, backend)

	assert.Equal(t, 4, layer.InFeatures())
	assert.Equal(t, 8, layer.OutFeatures())
	assert.True(t, layer.Weight().Tensor().Shape().Equal(tensor.Shape{4, 8}))
	assert.True(t, layer.Bias().Tensor().Shape().Equal(tensor.Shape{8}))

	params := layer.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "weight", params[0].Name())
	assert.Equal(t, "bias", params[1].Name())
}

// TestLinear_Initialization checks Xavier bounds for the weights and
// zeros for the bias.
func TestLinear_Initialization(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(50, 50, backend)

	bound := math.Sqrt(6.0 / float64(50+50))
	for i, w := range layer.Weight().Tensor().Data() {
		if math.Abs(float64(w)) > bound {
			t.Fatalf("weight[%d] = %v outside Xavier bound %v", i, w, bound)
		}
	}

	for i, b := range layer.Bias().Tensor().Data() {
		if b != 0 {
			t.Fatalf("bias[%d] = %v, want 0", i, b)
		}
	}
}

// TestLinear_ForwardPanics checks the input shape validation.
func TestLinear_ForwardPanics(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(3, 2, backend)

	oneD := newTensor(t, backend, tensor.Shape{3}, []float32{1, 2, 3})
	assert.Panics(t, func() { layer.Forward(oneD) })

	wrongFeatures := newTensor(t, backend, tensor.Shape{1, 4}, []float32{1, 2, 3, 4})
	assert.Panics(t, func() { layer.Forward(wrongFeatures) })
}

// TestLinear_InputNotModified checks Forward leaves its input alone.
func TestLinear_InputNotModified(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(2, 2, backend)

	input := newTensor(t, backend, tensor.Shape{1, 2}, []float32{1, 2})
	before := snapshot(input)

	layer.Forward(input)
	assert.Equal(t, before, input.Data())
}
