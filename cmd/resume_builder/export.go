package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved resume as a PDF",
	Long:  `Render the saved resume and print it to a PDF file using a headless browser. Requires Chrome/Chromium to be installed.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "resume.pdf", "Output PDF path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
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

	html, err := rendering.RenderHTML(rendering.Project(st.Document()))
	if err != nil {
		return err
	}

	pdf, err := export.PDF(cmd.Context(), html, &export.Options{
		Timeout: time.Duration(cfg.ExportTimeoutSecs) * time.Second,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(exportOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Exported %s (%d bytes)\n", exportOut, len(pdf))
	return nil
}
