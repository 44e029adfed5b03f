package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "visualci",
	Short: "Visual CI pipeline code generator",
	Long: "visualci converts visual pipeline graphs to shell scripts and workflow YAML " +
		"and parses either format back into a graph.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
