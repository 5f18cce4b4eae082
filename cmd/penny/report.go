package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgersmith/every-penny-counts/internal/cli"
	"github.com/ledgersmith/every-penny-counts/internal/common"
	"github.com/ledgersmith/every-penny-counts/internal/model"
	"github.com/ledgersmith/every-penny-counts/internal/storage"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize saved transactions by category",
		Long: `Show per-category counts and signed totals for transactions persisted
with 'penny process --save'.`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().BoolP("full", "f", false, "list every saved transaction after the summary")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	full, _ := cmd.Flags().GetBool("full")

	dbPath := databasePath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return common.NewUserError("no transaction database found; run 'penny process --save' first", common.ErrNotFound)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return common.NewUserError("failed to open the transaction database", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()

	summaries, err := store.SummarizeByCategory(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize transactions: %w", err)
	}
	fmt.Println(renderSummary(summaries))

	if full {
		transactions, err := store.ListTransactions(ctx)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		fmt.Println(renderTransactions(transactions))
	}

	return nil
}

func renderSummary(summaries []storage.CategorySummary) string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Spending by category"))
	b.WriteString("\n")

	if len(summaries) == 0 {
		b.WriteString(cli.SubtleStyle.Render("no saved transactions"))
		return b.String()
	}

	var net float64
	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("  %-15s %4d  %s\n", s.Category, s.Count, renderAmount(s.Total)))
		net += s.Total
	}
	b.WriteString(fmt.Sprintf("  %-15s %4s  %s", "Net", "", renderAmount(net)))
	return b.String()
}

func renderTransactions(transactions []model.Transaction) string {
	var b strings.Builder
	for _, txn := range transactions {
		b.WriteString(fmt.Sprintf("  %s  %-30s %-15s %s\n",
			cli.SubtleStyle.Render(txn.Date), txn.Name, txn.Category, renderAmount(txn.Amount)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAmount(amount float64) string {
	s := fmt.Sprintf("%10.2f", amount)
	if amount < 0 {
		return cli.AmountNegativeStyle.Render(s)
	}
	return cli.AmountPositiveStyle.Render(s)
}
