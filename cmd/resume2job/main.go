// Package main provides the entry point for the resume2job CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume2job",
	Short: "Resume to job matching engine",
	Long:  "resume2job extracts structured fields from resumes and ranks job listings by weighted skill, experience, and education compatibility, optionally enriched with LLM reasoning.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
