// Package main provides the entry point for the RankBuddy keyword research CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rankbuddy",
	Short: "RankBuddy keyword research engine",
	Long:  "RankBuddy turns a seed phrase into a ranked, deduplicated keyword pool with difficulty estimates and a content outline, using live suggestion APIs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
