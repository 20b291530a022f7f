package modeldef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skipnet-ml/skipnet/internal/nn"
)

// CurrentFormatVersion is the definition format this package writes and
// the only version it accepts.
const CurrentFormatVersion = 1

// Definition describes a model architecture as an ordered list of layer
// configurations.
type Definition struct {
	FormatVersion int         `json:"format_version" yaml:"format_version"`
	Name          string      `json:"name,omitempty" yaml:"name,omitempty"`
	Layers        []nn.Config `json:"layers"         yaml:"layers"`
}

// New creates a Definition at the current format version.
func New(name string, layers ...nn.Config) *Definition {
	return &Definition{
		FormatVersion: CurrentFormatVersion,
		Name:          name,
		Layers:        layers,
	}
}

// Format identifies a definition file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks the format from a file extension.
//
// ".json" selects JSON; ".yaml" and ".yml" select YAML. Any other
// extension returns ErrUnknownFormat.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("path %q: %w", path, ErrUnknownFormat)
	}
}

// Decode parses a definition from its serialized form.
//
// Layer config values keep the types the decoder produces: JSON numbers
// decode to float64, YAML whole numbers to int. The nn.Config accessors
// handle both.
func Decode(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %v: %w", format, ErrUnknownFormat)
	}
	return &def, nil
}

// Encode serializes a definition.
//
// JSON output is indented; both formats end with a newline so the bytes
// can go straight into a file.
func Encode(def *Definition, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(def)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("format %v: %w", format, ErrUnknownFormat)
	}
}

// ReadFile loads a definition, picking the format from the extension.
func ReadFile(path string) (*Definition, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return Decode(data, format)
}

// WriteFile stores a definition, picking the format from the extension.
func WriteFile(def *Definition, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(def, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write definition: %w", err)
	}
	return nil
}
