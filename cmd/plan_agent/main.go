// Package main provides the entry point for the health plan agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plan_agent",
	Short: "Health measurement assessment and weekly plan generation",
	Long:  "plan_agent evaluates health measurements against a declarative rule set, derives medical constraints, and generates a catalog-consistent weekly exercise and meal plan.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
