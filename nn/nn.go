// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/skipnet-ml/skipnet/internal/nn"
	"github.com/skipnet-ml/skipnet/internal/random"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// ModeSetter is implemented by modules whose behavior depends on the
// training mode.
type ModeSetter = nn.ModeSetter

// Mode selects between training and inference behavior for stochastic
// layers. The zero value is Unspecified, which acts as Inference.
type Mode = nn.Mode

// Mode constants.
const (
	Unspecified Mode = nn.Unspecified
	Training    Mode = nn.Training
	Inference   Mode = nn.Inference
)

// Parameter represents a trainable parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Stochastic layers

// StochasticDepth drops a whole residual branch at random during training.
type StochasticDepth[B tensor.Backend] = nn.StochasticDepth[B]

// NewStochasticDepth creates a stochastic depth join with the given
// survival probability. The probability is stored as given, without
// validation or clamping.
//
// Example:
//
//	backend := cpu.New()
//	depth := nn.NewStochasticDepth(0.8, backend)
//	output, err := depth.Apply([]*tensor.Tensor[float32, B]{shortcut, residual}, nn.Training)
func NewStochasticDepth[B tensor.Backend](survivalProb float64, backend B) *StochasticDepth[B] {
	return nn.NewStochasticDepth(survivalProb, backend)
}

// Dropout zeroes individual elements at random during training.
type Dropout[B tensor.Backend] = nn.Dropout[B]

// NewDropout creates a dropout layer with the given keep probability.
//
// Example:
//
//	drop := nn.NewDropout(0.9, backend)
//	drop.SetMode(nn.Training)
func NewDropout[B tensor.Backend](keepProb float64, backend B) *Dropout[B] {
	return nn.NewDropout(keepProb, backend)
}

// ResidualAdd joins a shortcut and a residual branch deterministically.
type ResidualAdd[B tensor.Backend] = nn.ResidualAdd[B]

// NewResidualAdd creates a plain residual join with survival probability 1.
func NewResidualAdd[B tensor.Backend](backend B) *ResidualAdd[B] {
	return nn.NewResidualAdd(backend)
}

// Residual wraps a body module with a shortcut connection and a
// stochastic depth join.
type Residual[B tensor.Backend] = nn.Residual[B]

// NewResidual creates a residual block with an identity shortcut.
//
// Example:
//
//	block := nn.NewResidual[*cpu.Backend](body, 0.8, backend)
func NewResidual[B tensor.Backend](body Module[B], survivalProb float64, backend B) *Residual[B] {
	return nn.NewResidual(body, survivalProb, backend)
}

// NewResidualWithProjection creates a residual block whose shortcut is a
// projection module, for bodies that change the feature dimension.
func NewResidualWithProjection[B tensor.Backend](body, projection Module[B], survivalProb float64, backend B) *Residual[B] {
	return nn.NewResidualWithProjection(body, projection, survivalProb, backend)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU[*cpu.Backend]()
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a new Sigmoid activation layer.
//
// Example:
//
//	sigmoid := nn.NewSigmoid[*cpu.Backend]()
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// Tanh represents the Tanh activation function.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a new Tanh activation layer.
//
// Example:
//
//	tanh := nn.NewTanh[*cpu.Backend]()
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// Sequential

// Sequential represents a sequential container of modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new sequential model.
//
// Example:
//
//	backend := cpu.New()
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[*cpu.Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization functions

// Xavier initializes a tensor using Xavier/Glorot initialization.
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Xavier(784, 128, tensor.Shape{784, 128}, src, backend)
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, src random.Source, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, src, backend)
}

// Zeros initializes a tensor with zeros (for biases).
//
// Example:
//
//	backend := cpu.New()
//	bias := nn.Zeros(tensor.Shape{128}, backend)
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Zeros(shape, backend)
}

// Ones initializes a tensor with ones.
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Ones(tensor.Shape{128, 784}, backend)
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Ones(shape, backend)
}

// Randn initializes a tensor with random values from N(0, 1).
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Randn(tensor.Shape{128, 784}, src, backend)
func Randn[B tensor.Backend](shape tensor.Shape, src random.Source, backend B) *tensor.Tensor[float32, B] {
	return nn.Randn(shape, src, backend)
}
