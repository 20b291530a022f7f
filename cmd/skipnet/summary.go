package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skipnet-ml/skipnet/backend/cpu"
	"github.com/skipnet-ml/skipnet/modeldef"
	"github.com/skipnet-ml/skipnet/nn"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <definition-file>",
	Short: "Print the layers of a model definition",
	Long: `Summary builds a model definition and prints one line per layer with
its type and effective probabilities. Defaults omitted from the file are
resolved through the registry, so the output shows what Build produces.`,
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

		out := cmd.OutOrStdout()
		if def.Name != "" {
			fmt.Fprintf(out, "Model: %s\n", def.Name)
		}
		fmt.Fprintf(out, "Format version: %d\n", def.FormatVersion)
		fmt.Fprintf(out, "Layers: %d\n\n", len(layers))

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tTYPE\tNAME\tPROBABILITY")
		for i, layer := range layers {
			cfg := layer.Config()
			layerType, _ := cfg.LayerType()
			name, _ := def.Layers[i].String(nn.KeyName)
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, layerType, name, probabilityColumn(cfg))
		}
		return w.Flush()
	},
}

// probabilityColumn renders the probability a built layer reported in
// its configuration.
func probabilityColumn(cfg nn.Config) string {
	if p, ok := cfg.Float(nn.KeySurvivalProbability); ok {
		return fmt.Sprintf("survival %.4g", p)
	}
	if p, ok := cfg.Float(nn.KeyKeepProbability); ok {
		return fmt.Sprintf("keep %.4g", p)
	}
	return "-"
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
