// Package modeldef reads and writes model architecture definitions.
//
// A definition is an ordered list of layer configs plus a format
// version, stored as JSON or YAML:
//
//	format_version: 1
//	name: resnet-tiny
//	layers:
//	  - layer_type: stochastic_depth
//	    survival_probability: 0.8
//	  - layer_type: dropout
//	    keep_probability: 0.9
//
// Definitions carry architecture only: layer types and their
// hyperparameters, no weights. Build turns a definition into live layers
// through an nn.Registry, and every layer's Config() folds back into a
// definition, so an architecture survives a save/load cycle unchanged.
//
// Example usage:
//
//	def, err := modeldef.ReadFile("model.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layers, err := modeldef.Build(def, nn.NewRegistry[*cpu.CPUBackend](), cpu.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
package modeldef
