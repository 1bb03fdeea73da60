// Package main provides the entry point for the career coach CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach_agent",
	Short: "Career Coach analysis engine",
	Long:  "Career Coach scores resumes, grades interview answers, generates interview questions, and matches candidates to jobs, locally or backed by a Gemini model.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
