// Copyright 2025 SkipNet ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package modeldef reads and writes model architecture definitions.
//
// A definition lists layer configurations in order, together with a
// format version and an optional model name. Definitions carry
// architecture only; weights are out of scope.
//
// Example:
//
//	def, err := modeldef.ReadFile("model.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := nn.NewRegistry[*cpu.Backend]()
//	layers, err := modeldef.Build(def, reg, backend)
package modeldef

import (
	"github.com/skipnet-ml/skipnet/internal/modeldef"
	"github.com/skipnet-ml/skipnet/internal/nn"
	"github.com/skipnet-ml/skipnet/internal/tensor"
)

// CurrentFormatVersion is the definition format this package writes.
const CurrentFormatVersion = modeldef.CurrentFormatVersion

// Definition is a serializable description of a model architecture.
type Definition = modeldef.Definition

// Format identifies a definition encoding.
type Format = modeldef.Format

// Supported formats.
const (
	FormatJSON Format = modeldef.FormatJSON
	FormatYAML Format = modeldef.FormatYAML
)

// Common errors.
var (
	ErrUnknownFormat      = modeldef.ErrUnknownFormat
	ErrUnsupportedVersion = modeldef.ErrUnsupportedVersion
	ErrNoLayers           = modeldef.ErrNoLayers
	ErrMissingLayerType   = modeldef.ErrMissingLayerType
)

// LayerError reports a problem with one layer of a definition.
type LayerError = modeldef.LayerError

// New creates a definition with the current format version.
func New(name string, layers ...nn.Config) *Definition {
	return modeldef.New(name, layers...)
}

// FormatForPath picks the format from a file extension.
// Recognized extensions are .json, .yaml, and .yml.
func FormatForPath(path string) (Format, error) {
	return modeldef.FormatForPath(path)
}

// Decode parses a definition from data in the given format.
func Decode(data []byte, format Format) (*Definition, error) {
	return modeldef.Decode(data, format)
}

// Encode serializes a definition in the given format.
func Encode(def *Definition, format Format) ([]byte, error) {
	return modeldef.Encode(def, format)
}

// ReadFile loads a definition from a file, picking the format from the
// file extension.
func ReadFile(path string) (*Definition, error) {
	return modeldef.ReadFile(path)
}

// WriteFile saves a definition to a file, picking the format from the
// file extension.
func WriteFile(def *Definition, path string) error {
	return modeldef.WriteFile(def, path)
}

// Validate checks a definition for structural problems.
//
// Probabilities are deliberately not range-checked; layers store them
// as given.
func Validate(def *Definition) error {
	return modeldef.Validate(def)
}

// Build constructs every layer of a valid definition through the
// registry.
//
// Example:
//
//	reg := nn.NewRegistry[*cpu.Backend]()
//	layers, err := modeldef.Build(def, reg, backend)
func Build[B tensor.Backend](def *Definition, reg *nn.Registry[B], backend B) ([]nn.Layer[B], error) {
	return modeldef.Build(def, reg, backend)
}

// Describe collects the configurations of built layers into a
// definition. It is the inverse of Build.
func Describe[B tensor.Backend](name string, layers []nn.Layer[B]) *Definition {
	return modeldef.Describe(name, layers)
}
