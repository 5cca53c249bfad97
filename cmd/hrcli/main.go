// Package main provides the command-line interface of the resume screening
// system: analyze a resume file, list configured job profiles, or run the
// built-in demo resume through the full pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hrcli",
	Short: "Resume screening and interview planning from the command line",
	Long:  "hrcli scores plain-text, PDF or DOCX resumes against a configured job and company profile and generates a matching interview question set per stage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
