package cpu

import (
	"github.com/skipnet-ml/skipnet/internal/parallel"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// Generic per-dtype kernels. The compiler instantiates one monomorphic loop
// per element type, so the hot loops stay free of interface dispatch.

// Inplace kernels (a op= b)

func addInplaceKernel[T tensor.DType](a, b []T, cfg parallel.Config) {
	parallel.For(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] += b[i]
		}
	}, cfg)
}

func subInplaceKernel[T tensor.DType](a, b []T, cfg parallel.Config) {
	parallel.For(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] -= b[i]
		}
	}, cfg)
}

func mulInplaceKernel[T tensor.DType](a, b []T, cfg parallel.Config) {
	parallel.For(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] *= b[i]
		}
	}, cfg)
}

func divInplaceKernel[T tensor.DType](a, b []T, cfg parallel.Config) {
	parallel.For(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] /= b[i]
		}
	}, cfg)
}

// Vectorized kernels (dst = a op b, same shape)

func addVectorizedKernel[T tensor.DType](dst, a, b []T, cfg parallel.Config) {
	parallel.For(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] + b[i]
		}
	}, cfg)
}

func subVectorizedKernel[T tensor.DType](dst, a, b []T, cfg parallel.Config) {
	parallel.For(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] - b[i]
		}
	}, cfg)
}

func mulVectorizedKernel[T tensor.DType](dst, a, b []T, cfg parallel.Config) {
	parallel.For(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * b[i]
		}
	}, cfg)
}

func divVectorizedKernel[T tensor.DType](dst, a, b []T, cfg parallel.Config) {
	parallel.For(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] / b[i]
		}
	}, cfg)
}

// Broadcast kernels (dst = a op b with index mapping)

func addBroadcastKernel[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		dst[i] = a[mapIndex(i, outStrides, aStrides)] + b[mapIndex(i, outStrides, bStrides)]
	}
}

func subBroadcastKernel[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		dst[i] = a[mapIndex(i, outStrides, aStrides)] - b[mapIndex(i, outStrides, bStrides)]
	}
}

func mulBroadcastKernel[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		dst[i] = a[mapIndex(i, outStrides, aStrides)] * b[mapIndex(i, outStrides, bStrides)]
	}
}

func divBroadcastKernel[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		dst[i] = a[mapIndex(i, outStrides, aStrides)] / b[mapIndex(i, outStrides, bStrides)]
	}
}

// broadcastStrides computes strides for broadcasting a shape to outShape.
// Dimensions of size 1 and padded leading dimensions get stride 0, so the
// same source element is reused along the broadcast axis.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// mapIndex converts a flat index in the output tensor to the flat index in
// a (possibly broadcast) source tensor.
func mapIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
