// Package engine drives the per-file normalization pipeline: resolve the
// column schema and account type once, then walk the rows turning each into
// a canonical transaction. Rows that cannot be resolved are counted and
// dropped; a file whose schema cannot be resolved yields an empty result.
// Partial output always beats total failure here.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ledgersmith/every-penny-counts/internal/account"
	"github.com/ledgersmith/every-penny-counts/internal/categorize"
	"github.com/ledgersmith/every-penny-counts/internal/merchant"
	"github.com/ledgersmith/every-penny-counts/internal/model"
	"github.com/ledgersmith/every-penny-counts/internal/normalize"
	"github.com/ledgersmith/every-penny-counts/internal/schema"
)

// Fallback date columns probed when the mapped date cell is empty. Some
// institutions leave the transaction date blank on pending rows but fill a
// posting date.
var fallbackDateColumns = []string{"Posting Date", "Post Date", "Effective Date", "Transaction Date"}

// Engine processes documents into normalized transactions.
type Engine struct{}

// New creates a processing engine.
func New() *Engine {
	return &Engine{}
}

// Process normalizes one document. File-level failures (no rows, unmappable
// columns) are degenerate successes: an empty result and a log line, never
// an error. Row-level failures increment Result.Skipped and processing
// continues.
func (e *Engine) Process(_ context.Context, doc model.Document) model.Result {
	if len(doc.Rows) == 0 {
		slog.Info("no data rows in file", "file", doc.Filename)
		return model.Result{}
	}

	accountType := account.Detect(doc)

	mapping, err := schema.MapColumns(doc.Columns)
	if err != nil {
		slog.Warn("cannot resolve required columns",
			"file", doc.Filename,
			"error", err)
		return model.Result{}
	}

	var result model.Result
	for i, row := range doc.Rows {
		txn, ok := e.processRow(row, mapping, accountType)
		if !ok {
			result.Skipped++
			slog.Debug("skipping row", "file", doc.Filename, "row", i+1)
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	if result.Skipped > 0 {
		slog.Warn("skipped rows with unresolved fields",
			"file", doc.Filename,
			"skipped", result.Skipped)
	}
	slog.Info("processed file",
		"file", doc.Filename,
		"account_type", accountType.String(),
		"transactions", len(result.Transactions))

	return result
}

func (e *Engine) processRow(row model.Row, mapping schema.Mapping, accountType model.AccountType) (model.Transaction, bool) {
	rawDesc, ok := row.Get(mapping.Description)
	if !ok {
		return model.Transaction{}, false
	}

	date, ok := e.resolveDate(row, mapping)
	if !ok {
		return model.Transaction{}, false
	}

	amount, rawAmount, ok := e.resolveAmount(row, mapping)
	if !ok {
		return model.Transaction{}, false
	}

	name := merchant.Clean(rawDesc)
	amount = normalize.AdjustSign(amount, rawAmount, accountType, strings.ToLower(name))

	txn := model.NewTransaction(date, name, amount, row)
	categorize.DetermineType(&txn)
	categorize.Categorize(&txn)
	return txn, true
}

func (e *Engine) resolveDate(row model.Row, mapping schema.Mapping) (string, bool) {
	if raw, ok := row.Get(mapping.Date); ok {
		if date, parsed := normalize.Date(raw); parsed {
			return date, true
		}
		return "", false
	}

	// Mapped cell was empty; probe the usual alternates.
	for _, col := range fallbackDateColumns {
		if raw, ok := row.Get(col); ok {
			if date, parsed := normalize.Date(raw); parsed {
				return date, true
			}
		}
	}
	return "", false
}

func (e *Engine) resolveAmount(row model.Row, mapping schema.Mapping) (amount float64, raw string, ok bool) {
	if mapping.HasAmount() {
		v, present := row.Get(mapping.Amount)
		if !present {
			return 0, "", false
		}
		amount, ok = normalize.Amount(v)
		return amount, v, ok
	}

	if mapping.HasDebitCredit() {
		debit, _ := row.Get(mapping.Debit)
		credit, _ := row.Get(mapping.Credit)
		return normalize.DebitCredit(debit, credit), "", true
	}

	return 0, "", false
}
