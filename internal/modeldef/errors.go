package modeldef

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownFormat      = errors.New("unknown definition format")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrNoLayers           = errors.New("definition has no layers")
	ErrMissingLayerType   = errors.New("layer config has no layer_type")
)

// LayerError reports a problem with one layer of a definition.
type LayerError struct {
	Index int    // Position in the layer list
	Type  string // Layer type id, when known
	Err   error
}

// Error implements the error interface.
func (e *LayerError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("layer %d (%s): %v", e.Index, e.Type, e.Err)
	}
	return fmt.Sprintf("layer %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *LayerError) Unwrap() error {
	return e.Err
}
