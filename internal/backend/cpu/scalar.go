package cpu

import (
	"fmt"

	"github.com/skipnet-ml/skipnet/internal/parallel"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar's Go type must match the tensor's dtype.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("mulScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		mulScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), cpu.par)
	case tensor.Float64:
		mulScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), cpu.par)
	case tensor.Int32:
		mulScalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), cpu.par)
	case tensor.Int64:
		mulScalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), cpu.par)
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("addScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		addScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), cpu.par)
	case tensor.Float64:
		addScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), cpu.par)
	case tensor.Int32:
		addScalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), cpu.par)
	case tensor.Int64:
		addScalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), cpu.par)
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

func mulScalarKernel[T tensor.DType](dst, src []T, scalar T, cfg parallel.Config) {
	parallel.For(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] * scalar
		}
	}, cfg)
}

func addScalarKernel[T tensor.DType](dst, src []T, scalar T, cfg parallel.Config) {
	parallel.For(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] + scalar
		}
	}, cfg)
}
