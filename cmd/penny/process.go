package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ledgersmith/every-penny-counts/internal/cli"
	"github.com/ledgersmith/every-penny-counts/internal/common"
	"github.com/ledgersmith/every-penny-counts/internal/engine"
	"github.com/ledgersmith/every-penny-counts/internal/model"
	"github.com/ledgersmith/every-penny-counts/internal/reader"
	"github.com/ledgersmith/every-penny-counts/internal/storage"
)

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [files...]",
		Short: "Normalize transaction exports into categorized records",
		Long: `Process CSV, Excel or OFX/QFX exports and emit normalized transactions as JSON.

Examples:
  # Process a single export to stdout
  penny process ~/Downloads/creditcard_jan.csv

  # Process everything from a month and write one JSON file
  penny process ~/Downloads/2024-01/*.csv -o january.json

  # Process and persist to the local database
  penny process ~/Downloads/checking.qfx --save`,
		Args: cobra.MinimumNArgs(1),
		RunE: runProcess,
	}

	cmd.Flags().StringP("output", "o", "", "write JSON to file instead of stdout")
	cmd.Flags().Bool("save", false, "persist transactions to the local database")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return common.NewUserError("no files found to process", nil)
	}

	var store *storage.SQLiteStorage
	if save {
		store, err = storage.NewSQLiteStorage(databasePath())
		if err != nil {
			return common.NewUserError("failed to open the transaction database", err)
		}
		defer func() { _ = store.Close() }()
	}

	eng := engine.New()
	ctx := cmd.Context()

	var all []model.Transaction
	totalSkipped := 0

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("processing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	for _, path := range files {
		doc, readErr := reader.ReadFile(path)
		if readErr != nil {
			slog.Error("failed to read file", "file", path, "error", readErr)
			_ = bar.Add(1)
			continue
		}

		result := eng.Process(ctx, doc)
		totalSkipped += result.Skipped

		if save && len(result.Transactions) > 0 {
			if saveErr := store.SaveTransactions(ctx, doc.Filename, result.Transactions); saveErr != nil {
				return fmt.Errorf("failed to save transactions from %s: %w", doc.Filename, saveErr)
			}
		}

		all = append(all, result.Transactions...)
		_ = bar.Add(1)
	}

	if err := writeJSON(all, output); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d transactions from %d file(s)", len(all), len(files))
	if totalSkipped > 0 {
		summary += cli.WarningStyle.Render(fmt.Sprintf(" (%d rows skipped)", totalSkipped))
	}
	fmt.Fprintln(os.Stderr, cli.SuccessStyle.Render("✓ ")+summary)

	return nil
}

func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

func writeJSON(transactions []model.Transaction, output string) error {
	// Encode an empty list, not null, when nothing survived.
	if transactions == nil {
		transactions = []model.Transaction{}
	}

	var w *os.File
	if output == "" {
		w = os.Stdout
	} else {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(transactions); err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return nil
}
