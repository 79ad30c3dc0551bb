package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-portfolio-agent/internal/config"
	"cv-portfolio-agent/internal/llm"
	"cv-portfolio-agent/internal/logging"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Verify the model runtime is reachable and list available models",
	RunE:  runCheckCmd,
}

var checkVerbose bool

func init() {
	checkCommand.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(checkCommand)
}

func runCheckCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	logging.Setup(checkVerbose)

	gateway, err := llm.NewOllamaGateway()
	if err != nil {
		return fmt.Errorf("failed to create model gateway: %w", err)
	}

	if !gateway.Available(ctx) {
		return fmt.Errorf("model runtime is not reachable; is ollama running?")
	}

	models, err := gateway.Models(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Model runtime is reachable.")
	if len(models) == 0 {
		fmt.Fprintln(os.Stdout, "No models are installed.")
		return nil
	}

	defaults := config.Default()
	fmt.Fprintf(os.Stdout, "Installed models (%d):\n", len(models))
	for _, name := range models {
		marker := ""
		switch name {
		case defaults.BrainModel:
			marker = "  (default brain model)"
		case defaults.CoderModel:
			marker = "  (default coder model)"
		}
		fmt.Fprintf(os.Stdout, "  - %s%s\n", name, marker)
	}

	return nil
}
