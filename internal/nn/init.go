package nn

import (
	"math"

	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across
// layers.
//
// Parameters:
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - shape: Shape of the weight tensor
//   - src: Uniform source for the draws; seed it for reproducible weights
//   - backend: Backend to use for tensor creation
//
// Returns a tensor initialized with the Xavier distribution.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, src random.Source, backend B) *tensor.Tensor[float32, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros[float32](shape, backend)
	data := t.Data()
	for i := range data {
		// Uniform in [-bound, bound).
		data[i] = float32((src.Float64()*2.0 - 1.0) * bound)
	}

	return t
}

// Zeros creates a tensor filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Zeros[float32](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return tensor.Ones[float32](shape, backend)
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1).
//
// The normal draws come from the Box-Muller transform over pairs of the
// source's uniform draws, so a seeded source gives reproducible tensors.
func Randn[B tensor.Backend](shape tensor.Shape, src random.Source, backend B) *tensor.Tensor[float32, B] {
	t := tensor.Zeros[float32](shape, backend)
	data := t.Data()

	for i := 0; i < len(data); i += 2 {
		u1, u2 := src.Float64(), src.Float64()
		// 1-u1 is in (0, 1], so the log is finite.
		r := math.Sqrt(-2.0 * math.Log(1.0-u1))
		theta := 2.0 * math.Pi * u2

		data[i] = float32(r * math.Cos(theta))
		if i+1 < len(data) {
			data[i+1] = float32(r * math.Sin(theta))
		}
	}

	return t
}
