// Package main provides the entry point for the CV portfolio agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_agent",
	Short: "CV to portfolio website generator",
	Long:  "portfolio_agent turns a CV document into a single-page portfolio website using two local models run sequentially: a reasoning model extracts structured data, a code model renders the page.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
