// Package main provides the entry point for the college data enrichment CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "college_enricher",
	Short: "College data enrichment CLI",
	Long:  "College Enricher fills a fixed schema of institutional attributes for a list of US colleges by querying an LLM, resuming safely across interrupted runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
