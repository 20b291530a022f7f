package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skipnet",
	Short: "SkipNet - stochastic depth layers for Go",
	Long: `SkipNet builds neural network layers with stochastic depth support.

Model architectures are described in JSON or YAML definition files and
rebuilt through the layer registry. The tool inspects and checks such
definition files.`,
	SilenceUsage: true,
}
