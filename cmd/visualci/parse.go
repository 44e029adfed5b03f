package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/haatos/visual-ci/internal/graph"
	"github.com/haatos/visual-ci/internal/parse"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Recover a graph from workflow YAML or a rendered script",
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
			return fmt.Errorf("err reading input file: %w", err)
		}

		var g graph.Graph
		switch format {
		case "workflow":
			g = parse.Workflow(string(b))
		case "script":
			g = parse.Script(string(b))
		default:
			return fmt.Errorf("unknown format %q (want workflow or script)", format)
		}

		out, err := json.MarshalIndent(g, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	parseCmd.Flags().StringP("input", "i", "pipeline.yml", "workflow YAML or script file")
	parseCmd.Flags().StringP("format", "f", "workflow", "input format: workflow or script")
	rootCmd.AddCommand(parseCmd)
}
