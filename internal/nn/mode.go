package nn

import "fmt"

// Mode selects the behavior of layers that act differently during
// training and inference.
//
// The zero value is Unspecified. Stochastic layers treat it like
// Inference, so a model that never sets a mode stays deterministic.
type Mode int

const (
	// Unspecified is the zero Mode. Layers treat it as Inference.
	Unspecified Mode = iota

	// Training enables stochastic behavior such as branch dropping.
	Training

	// Inference disables all randomness.
	Inference
)

// IsTraining reports whether the mode enables stochastic behavior.
func (m Mode) IsTraining() bool {
	return m == Training
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Training:
		return "training"
	case Inference:
		return "inference"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
