// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the SkipNet library.
//
// # Overview
//
// Tensors are the fundamental data structure in SkipNet. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Copy-on-write buffers with reference counting
//   - Device abstraction
//
// # Basic Usage
//
//	import (
//	    "github.com/skipnet-ml/skipnet/tensor"
//	    "github.com/skipnet-ml/skipnet/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    w := z.MulScalar(0.5)
//
//	    fmt.Println(w.Shape())  // [2 3]
//	}
//
// # Type Safety
//
// The element type and the backend are both type parameters, so mixing
// tensors from different backends or element types fails at compile time
// rather than at run time.
package tensor
