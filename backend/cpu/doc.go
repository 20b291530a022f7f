// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64, Int32, and Int64 support
//   - NumPy-compatible broadcasting
//   - In-place operation reuse for uniquely referenced buffers
//
// # Basic Usage
//
//	import (
//	    "github.com/skipnet-ml/skipnet/backend/cpu"
//	    "github.com/skipnet-ml/skipnet/tensor"
//	    "github.com/skipnet-ml/skipnet/nn"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//
//	    // Use with neural networks
//	    block := nn.NewStochasticDepth(0.8, backend)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
