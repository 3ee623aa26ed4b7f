package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	scoreJobPath string
	scoreJobURL  string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the saved resume for ATS compatibility",
	Long: `Compute the ATS compatibility score (0-100) for the saved resume.
With --job or --job-url the keyword component matches skills and position
titles against the job description; without one it earns flat average credit.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to a job description text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL of a job posting to fetch")
	scoreCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, found, err := openStore(cfg)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no saved resume found in %s", cfg.StorageDir)
	}

	jobDescription := ""
	switch {
	case scoreJobPath != "":
		data, err := os.ReadFile(scoreJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(data)
	case scoreJobURL != "":
		text, err := fetch.JobDescription(cmd.Context(), scoreJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
		jobDescription = text
	}

	score, breakdown := scoring.CalculateScore(st.Document(), jobDescription)

	fmt.Printf("ATS score: %d/100\n\n", score)
	fmt.Printf("  Contact     %5.1f\n", breakdown.Contact)
	fmt.Printf("  Summary     %5.1f\n", breakdown.Summary)
	fmt.Printf("  Skills      %5.1f\n", breakdown.Skills)
	fmt.Printf("  Experience  %5.1f\n", breakdown.Experience)
	fmt.Printf("  Education   %5.1f\n", breakdown.Education)
	fmt.Printf("  Projects    %5.1f\n", breakdown.Projects)
	fmt.Printf("  Keywords    %5.1f\n\n", breakdown.Keywords)
	fmt.Println(scoring.Explain(breakdown))
	return nil
}
