package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/haatos/visual-ci/internal/codegen"
	"github.com/haatos/visual-ci/internal/graph"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate script and workflow text from a graph JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		b, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("err reading graph file: %w", err)
		}
		var g graph.Graph
		if err := json.Unmarshal(b, &g); err != nil {
			return fmt.Errorf("err decoding graph file: %w", err)
		}

		switch format {
		case "shell":
			fmt.Fprint(cmd.OutOrStdout(), codegen.GenerateShell(g))
		case "workflow":
			fmt.Fprint(cmd.OutOrStdout(), codegen.GenerateWorkflow(g))
		default:
			return fmt.Errorf("unknown format %q (want shell or workflow)", format)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("input", "i", "graph.json", "graph JSON file")
	generateCmd.Flags().StringP("format", "f", "shell", "output format: shell or workflow")
	rootCmd.AddCommand(generateCmd)
}
