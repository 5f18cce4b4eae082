// Package schema infers which raw columns of a tabular export play which
// role in a transaction record. Bank exports agree on almost nothing, so
// each role is resolved by walking a priority-ordered list of known header
// names; the first header present wins.
package schema

import (
	"fmt"
	"strings"

	"github.com/ledgersmith/every-penny-counts/internal/common"
)

// Header name candidates per role, in priority order.
var (
	datePatterns        = []string{"date", "transaction date", "post date", "posted date", "time"}
	descriptionPatterns = []string{"description", "transaction", "merchant", "details", "name", "payee"}
	amountPatterns      = []string{"amount", "amt", "value", "transaction amount"}
	debitPatterns       = []string{"debit", "withdrawal", "charge", "expense", "payment"}
	creditPatterns      = []string{"credit", "deposit", "refund", "return"}
)

// Mapping records the actual column name backing each canonical role.
// Either Amount is set, or both Debit and Credit are.
type Mapping struct {
	Date        string
	Description string
	Amount      string
	Debit       string
	Credit      string
}

// HasAmount reports whether a single amount column was resolved.
func (m Mapping) HasAmount() bool { return m.Amount != "" }

// HasDebitCredit reports whether a separate debit/credit pair was resolved.
func (m Mapping) HasDebitCredit() bool { return m.Debit != "" && m.Credit != "" }

// MapColumns resolves the date, description and amount (or debit/credit)
// roles against the given column names. Matching is case-insensitive on
// exact header names. Date and description are hard requirements, as is one
// of amount or the full debit/credit pair; if any is missing the whole file
// is unmappable and the error wraps common.ErrMissingColumns.
func MapColumns(columns []string) (Mapping, error) {
	// When two headers collide case-insensitively the later column wins.
	lower := make(map[string]string, len(columns))
	for _, col := range columns {
		lower[strings.ToLower(col)] = col
	}

	var m Mapping
	m.Date = firstMatch(lower, datePatterns)
	m.Description = firstMatch(lower, descriptionPatterns)
	m.Amount = firstMatch(lower, amountPatterns)

	// A debit/credit pair only substitutes for a missing amount column;
	// a partial pair satisfies nothing.
	if m.Amount == "" {
		m.Debit = firstMatch(lower, debitPatterns)
		m.Credit = firstMatch(lower, creditPatterns)
		if m.Debit == "" || m.Credit == "" {
			m.Debit = ""
			m.Credit = ""
		}
	}

	var missing []string
	if m.Date == "" {
		missing = append(missing, "date")
	}
	if m.Description == "" {
		missing = append(missing, "description")
	}
	if !m.HasAmount() && !m.HasDebitCredit() {
		missing = append(missing, "amount (or debit+credit)")
	}
	if len(missing) > 0 {
		return Mapping{}, fmt.Errorf("%w: %s", common.ErrMissingColumns, strings.Join(missing, ", "))
	}

	return m, nil
}

func firstMatch(lower map[string]string, patterns []string) string {
	for _, p := range patterns {
		if col, ok := lower[p]; ok {
			return col
		}
	}
	return ""
}
