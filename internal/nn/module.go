// Package nn implements neural network modules for the SkipNet library.
//
// This package provides building blocks for residual networks with
// stochastic regularization:
//   - Module interface: Base interface for single-input NN components
//   - Layer interface: Multi-input components built through the Registry
//   - StochasticDepth: Drops whole residual branches during training
//   - Dropout: Zeroes individual elements during training
//   - Residual: Skip-connection block joined by StochasticDepth
//   - Linear, activations, Sequential: Plain feed-forward building blocks
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor should have the appropriate shape for this module.
	// For example, Linear expects [batch_size, in_features].
	//
	// Returns the output tensor with shape determined by the module type.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	//
	// This includes weights, biases, and any nested module parameters.
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter[B]
}

// ModeSetter is implemented by modules whose Forward behavior depends on
// the mode, such as Dropout and Residual. Containers propagate SetMode to
// every child that implements it.
type ModeSetter interface {
	SetMode(mode Mode)
}
