// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers with stochastic depth support.
//
// # Overview
//
// This package contains:
//   - Stochastic layers: StochasticDepth, Dropout, ResidualAdd
//   - Composition: Residual, Sequential, Module interface, Layer interface
//   - Feed-forward building blocks: Linear, ReLU, Sigmoid, Tanh
//   - Configuration: Config maps and the layer Registry
//   - Initialization: Xavier, Zeros, Ones, Randn
//
// # Basic Usage
//
//	import (
//	    "github.com/skipnet-ml/skipnet/nn"
//	    "github.com/skipnet-ml/skipnet/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // A residual block whose body is skipped stochastically
//	    block := nn.NewResidual[*cpu.Backend](
//	        nn.NewSequential(
//	            nn.NewLinear(64, 64, backend),
//	            nn.NewReLU[*cpu.Backend](),
//	        ),
//	        0.8, // survival probability
//	        backend,
//	    )
//
//	    block.SetMode(nn.Training)
//	    output := block.Forward(input)
//	}
//
// # Stochastic Depth
//
// During training, StochasticDepth keeps a residual branch with its
// survival probability and drops it otherwise. The decision is a single
// draw per call, shared by every element of the tensor. During inference
// the branch is always taken but scaled by the survival probability, so
// the expected magnitude matches training.
//
// # Modes
//
// Layers that behave differently between training and inference accept a
// Mode. The zero value, Unspecified, acts as Inference so that a freshly
// built model is deterministic until a trainer opts in to Training.
//
// # Configuration
//
// Every Layer reports its construction arguments as a Config map, and the
// Registry rebuilds layers from such maps. This supports saving and
// loading architectures; see the modeldef package.
package nn
