package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show per-section completeness for the saved resume",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, found, err := openStore(cfg)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("No saved resume found; starting from an empty document.")
	}

	doc := st.Document()
	for _, section := range progress.Sections {
		mark := " "
		if progress.IsSectionComplete(section, doc) {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, section)
	}
	fmt.Printf("\nOverall progress: %d%%\n", progress.CalculateProgress(doc))
	return nil
}
