// Package account infers what kind of financial account a file was exported
// from. The guess feeds the credit-card sign policy downstream, so it runs
// once per file before any row is processed.
package account

import (
	"log/slog"
	"strings"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

const sampleValuesPerColumn = 5

// Keyword evidence, checked in order: filename first, then sampled cell
// text. Filename wins because users name exports after the account.
var (
	creditCardFileHints  = []string{"credit", "card", "visa", "mastercard"}
	bankAccountFileHints = []string{"checking", "savings", "bank"}
	investmentFileHints  = []string{"investment", "trading", "brokerage"}

	creditCardCellHints  = []string{"credit card", "available credit", "minimum payment"}
	bankAccountCellHints = []string{"deposit", "withdrawal", "available balance"}
)

// Detect classifies the account behind a document. Unknown defaults to
// credit card, the most common export source.
func Detect(doc model.Document) model.AccountType {
	detected := detectFromFilename(doc.Filename)

	if detected == model.AccountUnknown {
		detected = detectFromCells(doc)
	}

	if detected == model.AccountUnknown {
		detected = model.AccountCreditCard
	}

	slog.Debug("detected account type",
		"file", doc.Filename,
		"account_type", detected.String())
	return detected
}

func detectFromFilename(filename string) model.AccountType {
	name := strings.ToLower(filename)
	switch {
	case containsAny(name, creditCardFileHints):
		return model.AccountCreditCard
	case containsAny(name, bankAccountFileHints):
		return model.AccountBankAccount
	case containsAny(name, investmentFileHints):
		return model.AccountInvestment
	default:
		return model.AccountUnknown
	}
}

func detectFromCells(doc model.Document) model.AccountType {
	var sample strings.Builder
	for _, col := range doc.Columns {
		seen := 0
		for _, row := range doc.Rows {
			if seen >= sampleValuesPerColumn {
				break
			}
			if v, ok := row.Get(col); ok {
				sample.WriteString(strings.ToLower(v))
				sample.WriteByte(' ')
				seen++
			}
		}
	}

	text := sample.String()
	switch {
	case containsAny(text, creditCardCellHints):
		return model.AccountCreditCard
	case containsAny(text, bankAccountCellHints):
		return model.AccountBankAccount
	default:
		return model.AccountUnknown
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
