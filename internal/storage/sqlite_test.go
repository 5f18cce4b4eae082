package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

func testStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "penny.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{
			Date:        "2024-01-01",
			Name:        "Walmart",
			Amount:      -1100.00,
			Type:        model.TypeExpense,
			Category:    "Groceries",
			Fundamental: model.FundamentalExpenses,
			Essential:   true,
			Original:    model.Row{"Date": "01/01/2024", "Description": "WALMART", "Amount": "1100.00"},
		},
		{
			Date:        "2024-01-04",
			Name:        "Payment Thank You",
			Amount:      165.99,
			Type:        model.TypeIncome,
			Fundamental: model.FundamentalIncome,
			Category:    "Other",
			Original:    model.Row{"Date": "01/04/2024", "Description": "PAYMENT THANK YOU", "Amount": "-165.99"},
		},
	}
}

func TestSaveAndListTransactions(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransactions(ctx, "creditcard.csv", sampleTransactions()))

	got, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "Walmart", got[0].Name)
	assert.InDelta(t, -1100.00, got[0].Amount, 1e-9)
	assert.True(t, got[0].Essential)
	assert.Equal(t, "WALMART", got[0].Original["Description"])

	assert.Equal(t, model.TypeIncome, got[1].Type)
}

func TestSaveTransactions_EmptyBatchIsNoop(t *testing.T) {
	s := testStorage(t)
	require.NoError(t, s.SaveTransactions(context.Background(), "x.csv", nil))

	got, err := s.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummarizeByCategory(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()
	require.NoError(t, s.SaveTransactions(ctx, "creditcard.csv", sampleTransactions()))

	summary, err := s.SummarizeByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Ordered by signed total, most negative first.
	assert.Equal(t, "Groceries", summary[0].Category)
	assert.Equal(t, 1, summary[0].Count)
	assert.InDelta(t, -1100.00, summary[0].Total, 1e-9)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "penny.db")

	s1, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s1.SaveTransactions(context.Background(), "a.csv", sampleTransactions()))
	require.NoError(t, s1.Close())

	// Re-opening must not re-run migrations or lose data.
	s2, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, err := s2.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
