package modeldef

import (
	"fmt"
)

// Validate checks a definition's structure.
//
// A valid definition carries the current format version and a non-empty
// layer list where every layer names its type. Probability values are
// deliberately not range-checked here: layers accept any number, and the
// registry builders reject only wrong types.
func Validate(def *Definition) error {
	if def.FormatVersion != CurrentFormatVersion {
		return fmt.Errorf("format_version %d: %w", def.FormatVersion, ErrUnsupportedVersion)
	}
	if len(def.Layers) == 0 {
		return ErrNoLayers
	}
	for i, cfg := range def.Layers {
		if _, ok := cfg.LayerType(); !ok {
			return &LayerError{Index: i, Err: ErrMissingLayerType}
		}
	}
	return nil
}
