package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skipnet-ml/skipnet/backend/cpu"
	"github.com/skipnet-ml/skipnet/modeldef"
	"github.com/skipnet-ml/skipnet/nn"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition-file>",
	Short: "Check a model definition file",
	Long: `Validate parses a model definition file, checks its structure, and
builds every layer against the CPU backend. Errors name the first
offending layer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		def, err := modeldef.ReadFile(path)
		if err != nil {
			return err
		}

		backend := cpu.New()
		reg := nn.NewRegistry[*cpu.Backend]()
		layers, err := modeldef.Build(def, reg, backend)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d layers)\n", path, len(layers))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
