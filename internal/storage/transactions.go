package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ledgersmith/every-penny-counts/internal/merchant"
	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// SaveTransactions persists a batch of normalized transactions from one
// source file in a single database transaction. The canonical merchant name
// is derived at save time so the stored rows can be grouped by vendor.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, sourceFile string, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (
			date, name, merchant, amount, type, category,
			fundamental, essential, fixed, source_file, original
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		original, marshalErr := json.Marshal(txn.Original)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode original row: %w", marshalErr)
		}

		if _, err := stmt.ExecContext(ctx,
			txn.Date,
			txn.Name,
			merchant.Canonical(txn.Name),
			txn.Amount,
			string(txn.Type),
			txn.Category,
			string(txn.Fundamental),
			boolToInt(txn.Essential),
			boolToInt(txn.Fixed),
			sourceFile,
			string(original),
		); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	return tx.Commit()
}

// ListTransactions returns stored transactions ordered by date then insert
// order. Original rows are re-hydrated from their JSON form.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, name, amount, type, category, fundamental, essential, fixed, original
		FROM transactions
		ORDER BY date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var (
			txn       model.Transaction
			essential int
			fixed     int
			original  string
		)
		if err := rows.Scan(&txn.Date, &txn.Name, &txn.Amount, &txn.Type,
			&txn.Category, &txn.Fundamental, &essential, &fixed, &original); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Essential = essential != 0
		txn.Fixed = fixed != 0
		if err := json.Unmarshal([]byte(original), &txn.Original); err != nil {
			return nil, fmt.Errorf("failed to decode original row: %w", err)
		}
		out = append(out, txn)
	}
	return out, rows.Err()
}

// CategorySummary aggregates stored transactions by category.
type CategorySummary struct {
	Category string
	Count    int
	Total    float64
}

// SummarizeByCategory returns per-category counts and signed totals.
func (s *SQLiteStorage) SummarizeByCategory(ctx context.Context) ([]CategorySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*), SUM(amount)
		FROM transactions
		GROUP BY category
		ORDER BY SUM(amount)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CategorySummary
	for rows.Next() {
		var cs CategorySummary
		var total sql.NullFloat64
		if err := rows.Scan(&cs.Category, &cs.Count, &total); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		cs.Total = total.Float64
		out = append(out, cs)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
