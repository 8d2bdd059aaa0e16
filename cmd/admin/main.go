package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	var logLevel string
	var logToFile bool
	var logFilePath string

	var rootCmd = &cobra.Command{
		Use:   "thesisdesk",
		Short: "Admin CLI tool for the monograph registry",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			godotenv.Load()
			return initLogger(logLevel, logToFile, logFilePath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level [trace, debug, info, warn, error]")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "Write logs to a file instead of the console")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "thesisdesk-admin.log", "Log file path")

	var grace time.Duration
	var purge bool

	var reconcileCmd = &cobra.Command{
		Use:   "reconcile",
		Short: "Settle registered records against the PDF bucket",
		Long: "Marks registered monographs whose PDF is in the bucket as stored, " +
			"reports records older than the grace window whose upload never arrived, " +
			"and reports bucket objects no record owns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(grace, purge)
		},
	}
	reconcileCmd.Flags().DurationVar(&grace, "grace", time.Hour, "How long a record may wait for its upload")
	reconcileCmd.Flags().BoolVar(&purge, "purge", false, "Delete orphaned records past the grace window")

	var out string
	var pdfDir string

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the registry as zstd-compressed JSONL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(out, pdfDir)
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "monographs.jsonl.zst", "Output file path")
	exportCmd.Flags().StringVar(&pdfDir, "pdf-dir", "", "Also download stored PDFs into this directory")

	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
