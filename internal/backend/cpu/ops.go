package cpu

import (
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// addInplace performs inplace addition (a += b).
// Requires: a.Shape().Equal(b.Shape()) && a.IsUnique().
func (cpu *CPUBackend) addInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		addInplaceKernel(a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		addInplaceKernel(a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		addInplaceKernel(a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		addInplaceKernel(a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("addInplace: unsupported dtype")
	}
}

// addVectorized performs vectorized addition: result = a + b.
// Requires: a.Shape().Equal(b.Shape()).
func (cpu *CPUBackend) addVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		addVectorizedKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		addVectorizedKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		addVectorizedKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		addVectorizedKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("addVectorized: unsupported dtype")
	}
}

// addWithBroadcast performs addition with broadcasting.
func (cpu *CPUBackend) addWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape) {
	switch a.DType() {
	case tensor.Float32:
		addBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		addBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	case tensor.Int32:
		addBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape)
	case tensor.Int64:
		addBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape)
	default:
		panic("addWithBroadcast: unsupported dtype")
	}
}

// Similar dispatch for sub, mul, div.

func (cpu *CPUBackend) subInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		subInplaceKernel(a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		subInplaceKernel(a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		subInplaceKernel(a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		subInplaceKernel(a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("subInplace: unsupported dtype")
	}
}

func (cpu *CPUBackend) subVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		subVectorizedKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		subVectorizedKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		subVectorizedKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		subVectorizedKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("subVectorized: unsupported dtype")
	}
}

func (cpu *CPUBackend) subWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape) {
	switch a.DType() {
	case tensor.Float32:
		subBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		subBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	case tensor.Int32:
		subBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape)
	case tensor.Int64:
		subBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape)
	default:
		panic("subWithBroadcast: unsupported dtype")
	}
}

func (cpu *CPUBackend) mulInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		mulInplaceKernel(a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		mulInplaceKernel(a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		mulInplaceKernel(a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		mulInplaceKernel(a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("mulInplace: unsupported dtype")
	}
}

func (cpu *CPUBackend) mulVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		mulVectorizedKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		mulVectorizedKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		mulVectorizedKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		mulVectorizedKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("mulVectorized: unsupported dtype")
	}
}

func (cpu *CPUBackend) mulWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape) {
	switch a.DType() {
	case tensor.Float32:
		mulBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		mulBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	case tensor.Int32:
		mulBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape)
	case tensor.Int64:
		mulBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape)
	default:
		panic("mulWithBroadcast: unsupported dtype")
	}
}

func (cpu *CPUBackend) divInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		divInplaceKernel(a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		divInplaceKernel(a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		divInplaceKernel(a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		divInplaceKernel(a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("divInplace: unsupported dtype")
	}
}

func (cpu *CPUBackend) divVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		divVectorizedKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
	case tensor.Float64:
		divVectorizedKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cpu.par)
	case tensor.Int32:
		divVectorizedKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
	case tensor.Int64:
		divVectorizedKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
	default:
		panic("divVectorized: unsupported dtype")
	}
}

func (cpu *CPUBackend) divWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape) {
	switch a.DType() {
	case tensor.Float32:
		divBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		divBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	case tensor.Int32:
		divBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape)
	case tensor.Int64:
		divBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape)
	default:
		panic("divWithBroadcast: unsupported dtype")
	}
}
