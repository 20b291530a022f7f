package nn

import (
	"testing"

	"github.com/skipnet-ml/skipnet/internal/backend/cpu"
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStochasticDepth_InferenceExpectation checks the deterministic
// output shortcut + survivalProb*residual.
func TestStochasticDepth_InferenceExpectation(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.5, backend)

	shortcut := newTensor(t, backend, tensor.Shape{3}, []float32{1, 1, 1})
	residual := newTensor(t, backend, tensor.Shape{3}, []float32{2, 2, 2})

	output, err := layer.Apply(pair(shortcut, residual), Inference)
	require.NoError(t, err)

	// 1 + 0.5*2 = 2 for every element.
	assert.Equal(t, []float32{2, 2, 2}, output.Data())
	assert.True(t, output.Shape().Equal(tensor.Shape{3}))
}

// TestStochasticDepth_InferenceExactArithmetic checks that the scaling
// is plain float32 arithmetic, with no hidden rounding.
func TestStochasticDepth_InferenceExactArithmetic(t *testing.T) {
	backend := cpu.New()
	p := 0.8
	layer := NewStochasticDepth(p, backend)

	shortcutData := []float32{0.1, -2.5, 3.75, 0}
	residualData := []float32{1.3, 0.25, -0.5, 7}
	shortcut := newTensor(t, backend, tensor.Shape{4}, shortcutData)
	residual := newTensor(t, backend, tensor.Shape{4}, residualData)

	output, err := layer.Apply(pair(shortcut, residual), Inference)
	require.NoError(t, err)

	expected := make([]float32, 4)
	for i := range expected {
		expected[i] = shortcutData[i] + float32(p)*residualData[i]
	}
	assert.Equal(t, expected, output.Data())
}

// TestStochasticDepth_UnspecifiedActsAsInference checks that the zero
// Mode value gives the inference output and draws nothing.
func TestStochasticDepth_UnspecifiedActsAsInference(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.3, backend)

	counter := &countingSource{src: random.NewSource(1)}
	layer.SetSource(counter)

	shortcut := newTensor(t, backend, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
	residual := newTensor(t, backend, tensor.Shape{2, 2}, []float32{5, 6, 7, 8})

	fromZero, err := layer.Apply(pair(shortcut, residual), Unspecified)
	require.NoError(t, err)

	fromInference, err := layer.Apply(pair(shortcut, residual), Inference)
	require.NoError(t, err)

	assert.Equal(t, fromInference.Data(), fromZero.Data())
	assert.Equal(t, 0, counter.draws, "deterministic modes must not draw")
}

// TestStochasticDepth_TrainingKeepsOrDrops drives the draw with a fixed
// sequence so keep and drop outcomes alternate deterministically.
func TestStochasticDepth_TrainingKeepsOrDrops(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.5, backend)
	// 0.1 < 0.5 keeps, 0.9 >= 0.5 drops.
	layer.SetSource(random.NewSequence(0.1, 0.9))

	shortcutData := []float32{1, 2, 3}
	residualData := []float32{10, 20, 30}
	shortcut := newTensor(t, backend, tensor.Shape{3}, shortcutData)
	residual := newTensor(t, backend, tensor.Shape{3}, residualData)

	sum := []float32{11, 22, 33}

	for i := 0; i < 10; i++ {
		output, err := layer.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)

		if i%2 == 0 {
			assert.Equal(t, sum, output.Data(), "call %d should keep the branch", i)
		} else {
			assert.Equal(t, shortcutData, output.Data(), "call %d should drop the branch", i)
		}
	}
}

// TestStochasticDepth_TrainingKeepIsExactSum checks that the kept branch
// is added without any scaling.
func TestStochasticDepth_TrainingKeepIsExactSum(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.5, backend)
	layer.SetSource(random.Const(0.1)) // always below 0.5, always keeps

	shortcutData := []float32{0.1, -2.5, 3.75}
	residualData := []float32{1.3, 0.25, -0.5}
	shortcut := newTensor(t, backend, tensor.Shape{3}, shortcutData)
	residual := newTensor(t, backend, tensor.Shape{3}, residualData)

	output, err := layer.Apply(pair(shortcut, residual), Training)
	require.NoError(t, err)

	expected := make([]float32, 3)
	for i := range expected {
		expected[i] = shortcutData[i] + residualData[i]
	}
	assert.Equal(t, expected, output.Data())
}

// TestStochasticDepth_CertainSurvival checks p=1: every training call
// keeps the branch, whatever the source produces.
func TestStochasticDepth_CertainSurvival(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(1.0, backend)
	layer.SetSource(random.NewSource(99))

	shortcut := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})
	residual := newTensor(t, backend, tensor.Shape{2}, []float32{10, 20})

	for i := 0; i < 100; i++ {
		output, err := layer.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)
		assert.Equal(t, []float32{11, 22}, output.Data())
	}
}

// TestStochasticDepth_ZeroSurvival checks p=0: every training call drops
// the branch.
func TestStochasticDepth_ZeroSurvival(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.0, backend)
	layer.SetSource(random.NewSource(99))

	shortcut := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})
	residual := newTensor(t, backend, tensor.Shape{2}, []float32{10, 20})

	for i := 0; i < 100; i++ {
		output, err := layer.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2}, output.Data())
	}
}

// TestStochasticDepth_InputLength checks the arity error for every wrong
// input count.
func TestStochasticDepth_InputLength(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.5, backend)
	x := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})

	tests := []struct {
		name   string
		inputs []*tensor.Tensor[float32, testBackend]
		want   string
	}{
		{"Empty", nil, "length=0"},
		{"Single", []*tensor.Tensor[float32, testBackend]{x}, "length=1"},
		{"Triple", []*tensor.Tensor[float32, testBackend]{x, x, x}, "length=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := layer.Apply(tt.inputs, Training)
			assert.Nil(t, output)
			assert.ErrorContains(t, err, tt.want)
			assert.ErrorContains(t, err, LayerTypeStochasticDepth)
		})
	}
}

// TestStochasticDepth_ConfigRoundTrip rebuilds the layer from its config
// through the registry.
func TestStochasticDepth_ConfigRoundTrip(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.37, backend)

	cfg := layer.Config()
	assert.Equal(t, Config{
		KeyLayerType:           LayerTypeStochasticDepth,
		KeySurvivalProbability: 0.37,
	}, cfg)

	reg := NewRegistry[testBackend]()
	rebuilt, err := reg.Build(cfg, backend)
	require.NoError(t, err)

	clone, ok := rebuilt.(*StochasticDepth[testBackend])
	require.True(t, ok, "expected *StochasticDepth, got %T", rebuilt)
	assert.Equal(t, 0.37, clone.SurvivalProbability())
	assert.Equal(t, cfg, clone.Config())
}

// TestStochasticDepth_InputsNotModified checks that Apply leaves its
// inputs untouched in every mode and on both training outcomes.
func TestStochasticDepth_InputsNotModified(t *testing.T) {
	backend := cpu.New()

	shortcut := newTensor(t, backend, tensor.Shape{3}, []float32{1, 2, 3})
	residual := newTensor(t, backend, tensor.Shape{3}, []float32{10, 20, 30})
	shortcutBefore := snapshot(shortcut)
	residualBefore := snapshot(residual)

	keep := NewStochasticDepth(1.0, backend)
	drop := NewStochasticDepth(0.0, backend)

	for _, mode := range []Mode{Training, Inference, Unspecified} {
		for _, layer := range []*StochasticDepth[testBackend]{keep, drop} {
			_, err := layer.Apply(pair(shortcut, residual), mode)
			require.NoError(t, err)

			assert.Equal(t, shortcutBefore, shortcut.Data())
			assert.Equal(t, residualBefore, residual.Data())
		}
	}
}

// TestStochasticDepth_DeterministicWithSeed checks that two layers with
// equally seeded sources produce identical training runs.
func TestStochasticDepth_DeterministicWithSeed(t *testing.T) {
	backend := cpu.New()

	first := NewStochasticDepth(0.6, backend)
	second := NewStochasticDepth(0.6, backend)
	first.SetSource(random.NewSource(7))
	second.SetSource(random.NewSource(7))

	shortcut := newTensor(t, backend, tensor.Shape{4}, []float32{1, 2, 3, 4})
	residual := newTensor(t, backend, tensor.Shape{4}, []float32{5, 6, 7, 8})

	for i := 0; i < 20; i++ {
		a, err := first.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)
		b, err := second.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)

		assert.Equal(t, a.Data(), b.Data(), "run diverged at call %d", i)
	}
}

// TestStochasticDepth_OneDrawPerCall checks that training consumes
// exactly one draw per Apply, shared by the whole tensor.
func TestStochasticDepth_OneDrawPerCall(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.5, backend)

	counter := &countingSource{src: random.NewSource(1)}
	layer.SetSource(counter)

	shortcut := newTensor(t, backend, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	residual := newTensor(t, backend, tensor.Shape{2, 3}, []float32{6, 5, 4, 3, 2, 1})

	for i := 0; i < 5; i++ {
		_, err := layer.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, counter.draws, "one draw per training call, not per element")

	_, err := layer.Apply(pair(shortcut, residual), Inference)
	require.NoError(t, err)
	assert.Equal(t, 5, counter.draws)
}

// TestStochasticDepth_WholeBranchDecision checks that a single draw
// decides for every element at once. A per-element implementation would
// mix kept and dropped elements under an alternating source.
func TestStochasticDepth_WholeBranchDecision(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.5, backend)
	layer.SetSource(random.NewSequence(0.4, 0.6, 0.4, 0.6))

	shortcutData := []float32{1, 2, 3, 4}
	shortcut := newTensor(t, backend, tensor.Shape{2, 2}, shortcutData)
	residual := newTensor(t, backend, tensor.Shape{2, 2}, []float32{10, 20, 30, 40})

	kept, err := layer.Apply(pair(shortcut, residual), Training)
	require.NoError(t, err)
	assert.Equal(t, []float32{11, 22, 33, 44}, kept.Data())

	dropped, err := layer.Apply(pair(shortcut, residual), Training)
	require.NoError(t, err)
	assert.Equal(t, shortcutData, dropped.Data())
}

// TestStochasticDepth_UnclampedProbability checks that out-of-range
// probabilities are stored as given and act as certainties in training.
func TestStochasticDepth_UnclampedProbability(t *testing.T) {
	backend := cpu.New()

	above := NewStochasticDepth(1.5, backend)
	above.SetSource(random.NewSource(3))
	assert.Equal(t, 1.5, above.SurvivalProbability())

	below := NewStochasticDepth(-0.5, backend)
	below.SetSource(random.NewSource(3))
	assert.Equal(t, -0.5, below.SurvivalProbability())

	shortcut := newTensor(t, backend, tensor.Shape{2}, []float32{1, 2})
	residual := newTensor(t, backend, tensor.Shape{2}, []float32{10, 20})

	for i := 0; i < 20; i++ {
		output, err := above.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)
		assert.Equal(t, []float32{11, 22}, output.Data())

		output, err = below.Apply(pair(shortcut, residual), Training)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2}, output.Data())
	}
}

// TestStochasticDepth_Accessors covers the trivial getters.
func TestStochasticDepth_Accessors(t *testing.T) {
	backend := cpu.New()
	layer := NewStochasticDepth(0.9, backend)

	assert.Equal(t, 0.9, layer.SurvivalProbability())
	assert.Same(t, backend, layer.Backend())
}
