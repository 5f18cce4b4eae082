// Package model defines the core domain models used throughout the application.
package model

// TransactionType describes which direction of the budget a transaction
// belongs to.
type TransactionType string

// Transaction type constants.
const (
	TypeExpense    TransactionType = "expense"
	TypeIncome     TransactionType = "income"
	TypeInvestment TransactionType = "investment"
	TypeDebt       TransactionType = "debt"
	TypeSavings    TransactionType = "savings"
)

// Fundamental is the coarse classification bucket above category granularity.
type Fundamental string

// Fundamental bucket constants.
const (
	FundamentalExpenses    Fundamental = "Expenses"
	FundamentalIncome      Fundamental = "Income"
	FundamentalInvestments Fundamental = "Investments"
	FundamentalDebts       Fundamental = "Debts"
	FundamentalSavings     Fundamental = "Savings"
)

// Transaction is a single normalized financial transaction, independent of
// the layout of the file it came from.
type Transaction struct {
	Date        string          `json:"date"` // always YYYY-MM-DD
	Name        string          `json:"name"`
	Amount      float64         `json:"amount"` // negative = outflow, positive = inflow
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Fundamental Fundamental     `json:"fundamental"`
	Essential   bool            `json:"essential"`
	Fixed       bool            `json:"fixed"`
	Original    Row             `json:"original"` // raw source row, retained for traceability
}

// NewTransaction returns a transaction with the defaults the pipeline
// assumes before type determination and categorization run.
func NewTransaction(date, name string, amount float64, original Row) Transaction {
	return Transaction{
		Date:        date,
		Name:        name,
		Amount:      amount,
		Type:        TypeExpense,
		Category:    "Other",
		Fundamental: FundamentalExpenses,
		Original:    original,
	}
}
