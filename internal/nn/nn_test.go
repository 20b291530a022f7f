package nn

import (
	"testing"

	"github.com/skipnet-ml/skipnet/internal/backend/cpu"
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
	"github.com/stretchr/testify/require"
)

// testBackend is the backend used across the package tests.
type testBackend = *cpu.CPUBackend

// Interface checks for the package's public types.
var (
	_ Layer[testBackend]  = (*StochasticDepth[testBackend])(nil)
	_ Layer[testBackend]  = (*Dropout[testBackend])(nil)
	_ Layer[testBackend]  = (*ResidualAdd[testBackend])(nil)
	_ Module[testBackend] = (*Dropout[testBackend])(nil)
	_ Module[testBackend] = (*Residual[testBackend])(nil)
	_ Module[testBackend] = (*Sequential[testBackend])(nil)
	_ Module[testBackend] = (*Linear[testBackend])(nil)
	_ Module[testBackend] = (*ReLU[testBackend])(nil)
	_ Module[testBackend] = (*Sigmoid[testBackend])(nil)
	_ Module[testBackend] = (*Tanh[testBackend])(nil)
	_ ModeSetter          = (*Dropout[testBackend])(nil)
	_ ModeSetter          = (*Residual[testBackend])(nil)
	_ ModeSetter          = (*Sequential[testBackend])(nil)
)

// newTensor builds a float32 tensor for tests.
func newTensor(t *testing.T, backend testBackend, shape tensor.Shape, data []float32) *tensor.Tensor[float32, testBackend] {
	t.Helper()
	tt, err := tensor.FromSlice(data, shape, backend)
	require.NoError(t, err)
	return tt
}

// pair wraps a shortcut and a residual as layer inputs.
func pair(shortcut, residual *tensor.Tensor[float32, testBackend]) []*tensor.Tensor[float32, testBackend] {
	return []*tensor.Tensor[float32, testBackend]{shortcut, residual}
}

// snapshot copies a tensor's data so later mutations can be detected.
func snapshot(t *tensor.Tensor[float32, testBackend]) []float32 {
	return append([]float32{}, t.Data()...)
}

// countingSource wraps a Source and counts how many draws it serves.
type countingSource struct {
	src   random.Source
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

// scaleModule multiplies its input by a constant factor. It is the
// simplest deterministic body for residual and container tests.
type scaleModule struct {
	factor float32
}

func (m *scaleModule) Forward(input *tensor.Tensor[float32, testBackend]) *tensor.Tensor[float32, testBackend] {
	return input.MulScalar(m.factor)
}

func (m *scaleModule) Parameters() []*Parameter[testBackend] {
	return nil
}
