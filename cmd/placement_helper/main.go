// Package main provides the entry point for the Placement Helper HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement_helper",
	Short: "Placement Helper HTTP API Server",
	Long:  "Placement Helper resolves company information from cached, dataset, and external sources and serves interview-preparation data via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
