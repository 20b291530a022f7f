package nn

import (
	"fmt"

	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Layer is the interface for network components that take a fixed number
// of input tensors, such as the two-branch StochasticDepth join.
//
// Layer differs from Module in two ways: Apply takes a slice of inputs
// instead of a single tensor, and every call names its Mode explicitly,
// so one layer value serves training and inference without being
// reconfigured between calls.
//
// Implementations validate the input count and return an error for the
// wrong arity instead of panicking.
type Layer[B tensor.Backend] interface {
	// Apply computes the layer output for the given inputs and mode.
	Apply(inputs []*tensor.Tensor[float32, B], mode Mode) (*tensor.Tensor[float32, B], error)

	// Config returns the serializable configuration of the layer.
	// Registry.Build reconstructs an equivalent layer from it.
	Config() Config
}

// errInputLength reports a wrong number of inputs to a layer. The message
// carries the received count as "length=N".
func errInputLength(layerType string, want, got int) error {
	return fmt.Errorf("%s: expected %d inputs, got length=%d", layerType, want, got)
}
