// Package cpu implements the CPU backend with parallel element-wise kernels.
package cpu

import (
	"fmt"

	"github.com/skipnet-ml/skipnet/internal/parallel"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// CPUBackend implements tensor operations on CPU with chunked parallel kernels.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("add: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		// Fast path: same shape. Mutate a in place when it is the only
		// reference to its buffer, otherwise write into a fresh tensor.
		if a.IsUnique() {
			cpu.addInplace(a, b)
			return a
		}
		result := cpu.newResult("add", outShape, a.DType())
		cpu.addVectorized(result, a, b)
		return result
	}

	// Slow path: broadcasting required.
	result := cpu.newResult("add", outShape, a.DType())
	cpu.addWithBroadcast(result, a, b, outShape)
	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("sub: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			cpu.subInplace(a, b)
			return a
		}
		result := cpu.newResult("sub", outShape, a.DType())
		cpu.subVectorized(result, a, b)
		return result
	}

	result := cpu.newResult("sub", outShape, a.DType())
	cpu.subWithBroadcast(result, a, b, outShape)
	return result
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("mul: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			cpu.mulInplace(a, b)
			return a
		}
		result := cpu.newResult("mul", outShape, a.DType())
		cpu.mulVectorized(result, a, b)
		return result
	}

	result := cpu.newResult("mul", outShape, a.DType())
	cpu.mulWithBroadcast(result, a, b, outShape)
	return result
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("div: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			cpu.divInplace(a, b)
			return a
		}
		result := cpu.newResult("div", outShape, a.DType())
		cpu.divVectorized(result, a, b)
		return result
	}

	result := cpu.newResult("div", outShape, a.DType())
	cpu.divWithBroadcast(result, a, b, outShape)
	return result
}

// newResult allocates an output tensor, panicking on allocation failure.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
