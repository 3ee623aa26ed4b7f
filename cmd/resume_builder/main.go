// Package main provides the entry point for the Resume Builder CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	storageDir string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder HTTP API and CLI",
	Long:  "Resume Builder edits a structured resume document, scores its ATS compatibility against job descriptions, and exports it as a PDF.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDir, "storage-dir", "", "Directory holding the persisted resume document")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
