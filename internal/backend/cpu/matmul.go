package cpu

import (
	"fmt"

	"github.com/skipnet-ml/skipnet/internal/parallel"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
// Rows of the output are computed in parallel chunks.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	// Validate dimensions
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result := cpu.newResult("matmul", tensor.Shape{m, n}, a.DType())

	// Dispatch to type-specific implementation
	switch a.DType() {
	case tensor.Float32:
		matmulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.par)
	case tensor.Float64:
		matmulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.par)
	case tensor.Int32:
		matmulKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n, cpu.par)
	case tensor.Int64:
		matmulKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n, cpu.par)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulKernel computes C[i,j] = sum_k A[i,k] * B[k,j] with the k loop
// hoisted (ikj order) for sequential access to B. Each chunk of rows is
// computed by one goroutine and writes disjoint regions of C.
func matmulKernel[T tensor.DType](c, a, b []T, m, k, n int, cfg parallel.Config) {
	// Chunk the output rows. MinChunkSize guards against tiny matrices,
	// full rows keep each goroutine's writes disjoint.
	rowCfg := cfg
	rowCfg.MinChunkSize = max(1, cfg.MinChunkSize/max(1, n))

	parallel.For(m, func(rowStart, rowEnd int) {
		for i := rowStart; i < rowEnd; i++ {
			out := c[i*n : (i+1)*n]
			for kIdx := 0; kIdx < k; kIdx++ {
				av := a[i*k+kIdx]
				row := b[kIdx*n : (kIdx+1)*n]
				for j := range out {
					out[j] += av * row[j]
				}
			}
		}
	}, rowCfg)
}
