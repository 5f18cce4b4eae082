package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersmith/every-penny-counts/internal/common"
	"github.com/ledgersmith/every-penny-counts/internal/model"
	"github.com/ledgersmith/every-penny-counts/internal/storage"
)

func TestRunReport_MissingDatabase(t *testing.T) {
	viper.Set("database.path", filepath.Join(t.TempDir(), "missing.db"))
	t.Cleanup(viper.Reset)

	cmd := reportCmd()
	cmd.SetContext(context.Background())
	err := runReport(cmd, nil)
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRunReport_SavedTransactions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "penny.db")
	viper.Set("database.path", dbPath)
	t.Cleanup(viper.Reset)

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	err = store.SaveTransactions(ctx, "jan.csv", []model.Transaction{
		{Date: "2024-01-02", Name: "Whole Foods", Amount: -54.10, Type: model.TypeExpense, Category: "Groceries", Fundamental: model.FundamentalExpenses},
		{Date: "2024-01-05", Name: "Paycheck", Amount: 2500.00, Type: model.TypeIncome, Category: "Income", Fundamental: model.FundamentalIncome},
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	cmd := reportCmd()
	cmd.SetContext(ctx)
	require.NoError(t, cmd.Flags().Set("full", "true"))
	require.NoError(t, runReport(cmd, nil))
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary([]storage.CategorySummary{
		{Category: "Groceries", Count: 3, Total: -210.45},
		{Category: "Income", Count: 1, Total: 2500.00},
	})

	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "-210.45")
	assert.Contains(t, out, "Income")
	assert.Contains(t, out, "2500.00")
	assert.Contains(t, out, "Net")
}

func TestRenderSummary_Empty(t *testing.T) {
	assert.Contains(t, renderSummary(nil), "no saved transactions")
}

func TestRenderTransactions(t *testing.T) {
	out := renderTransactions([]model.Transaction{
		{Date: "2024-01-02", Name: "Whole Foods", Category: "Groceries", Amount: -54.10},
	})

	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Whole Foods")
	assert.Contains(t, out, "-54.10")
}
