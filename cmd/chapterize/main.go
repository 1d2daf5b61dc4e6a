// Package main is the entry point for the chapterize CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"chapterize/internal/config"
	"chapterize/internal/pipeline"
	"chapterize/internal/settings"
)

var (
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chapterize [pdf-file]",
	Short: "Extract PDF text and split it into per-chapter files",
	Long: `chapterize extracts the plain text of a PDF and splits it into one file per
chapter, inferred from line-pattern heuristics. Processed books land under the
media directory, one subdirectory per book.

With a PDF path argument the file is processed and the program exits. With no
arguments an interactive menu is shown.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runInteractive()
		}
		return runProcess(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: txt or md (default: saved setting)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(bookCmd)
}

// newLogger builds the console logger shared by all components.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// runProcess handles the non-interactive path: process one PDF and report.
func runProcess(path string) error {
	cfg := config.Load()

	format := flagFormat
	if format == "" {
		format = settings.New(cfg.SettingsFile).OutputFormat()
	}
	if !settings.IsSupported(format) {
		return fmt.Errorf("unsupported output format %q (use txt or md)", format)
	}

	proc := pipeline.New(cfg, newLogger())

	fmt.Printf("Processing PDF: %s\n", path)
	fmt.Printf("Output format: %s\n", format)

	result, err := proc.Process(path, format)
	if err != nil {
		fmt.Println("\nFailed to process PDF")
		fmt.Println("The PDF may be image-based or corrupted")
		return err
	}

	fmt.Println("\nPDF processed successfully!")
	fmt.Printf("Output folder: %s\n", result.Dir)
	fmt.Printf("Chapters saved: %d\n", result.Chapters)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
