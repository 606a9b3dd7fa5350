// Package main provides the entry point for the Talent Dashboard HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_dashboard",
	Short: "Talent Dashboard HTTP API Server",
	Long:  "Talent Dashboard ingests candidate batches, scores and ranks them, and serves a filterable, pageable listing with a bounded shortlist via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
