// Package categorize assigns each transaction a category, a type and its
// essential/fixed flags from the ordered pattern table. All matching is
// plain substring containment over the cleaned, lowercased description; the
// table's order, not match quality, breaks ties.
package categorize

import (
	"strings"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// Keyword groups used by type determination.
var (
	investmentIncomeKeywords = []string{"dividend", "interest"}
	debtKeywords             = []string{"loan payment", "mortgage", "credit card payment"}
	savingsKeywords          = []string{"transfer to savings", "401k", "ira contribution"}
	fixedKeywords            = []string{"subscription", "membership"}
)

// DetermineType sets the transaction's type and fundamental bucket from the
// signed amount and description keywords. It runs before Categorize.
func DetermineType(txn *model.Transaction) {
	description := strings.ToLower(txn.Name)

	if txn.Amount > 0 {
		if containsAny(description, investmentIncomeKeywords) {
			txn.Type = model.TypeInvestment
			txn.Fundamental = model.FundamentalInvestments
		} else {
			txn.Type = model.TypeIncome
			txn.Fundamental = model.FundamentalIncome
		}
		return
	}

	switch {
	case containsAny(description, debtKeywords):
		txn.Type = model.TypeDebt
		txn.Fundamental = model.FundamentalDebts
	case containsAny(description, savingsKeywords):
		if strings.Contains(description, "savings") {
			txn.Type = model.TypeSavings
			txn.Fundamental = model.FundamentalSavings
		} else {
			txn.Type = model.TypeInvestment
			txn.Fundamental = model.FundamentalInvestments
		}
	default:
		txn.Type = model.TypeExpense
		txn.Fundamental = model.FundamentalExpenses
	}
}

// Categorize assigns the first matching category from the table (default
// "Other") and derives the essential and fixed flags from it.
func Categorize(txn *model.Transaction) {
	description := strings.ToLower(txn.Name)

	txn.Category = "Other"
	for _, category := range CategoryPatterns {
		if containsAny(description, category.Patterns) {
			txn.Category = category.Name
			break
		}
	}

	txn.Essential = EssentialCategories[txn.Category]
	txn.Fixed = FixedCategories[txn.Category] || containsAny(description, fixedKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
