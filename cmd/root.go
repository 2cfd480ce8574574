// Package cmd provides CLI commands for scholartab.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "scholartab",
	Short: "Convert researcher profile exports into relational CSV tables",
	Long: `Scholartab ingests per-institution JSON exports of researcher profiles,
normalizes them into one canonical record schema, resolves free-text tags
against a controlled vocabulary index, and emits two CSV tables ready for
bulk load into a relational database.

Examples:
  scholartab export --sources ./tag_data --index ./index/index_en.json --out-dir ./output
  scholartab clean --sources ./tag_data -o cleaned_data.json
  scholartab validate --sources ./tag_data
  scholartab audit --sources ./tag_data --index ./index/index_en.json -o quality.xlsx`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()
	setupLogger()
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(auditCmd)
}
