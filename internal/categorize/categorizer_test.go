package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name          string
		txnName       string
		wantCategory  string
		wantEssential bool
		wantFixed     bool
	}{
		{
			name:          "walmart resolves to groceries not shopping",
			txnName:       "Walmart Supercenter",
			wantCategory:  "Groceries",
			wantEssential: true,
			wantFixed:     false,
		},
		{
			name:          "target resolves to groceries not shopping",
			txnName:       "Target Store Sandy Ut",
			wantCategory:  "Groceries",
			wantEssential: true,
			wantFixed:     false,
		},
		{
			name:          "mortgage is essential and fixed",
			txnName:       "Mortgage Payment",
			wantCategory:  "Housing",
			wantEssential: true,
			wantFixed:     true,
		},
		{
			name:          "netflix is entertainment, not fixed",
			txnName:       "Netflix",
			wantCategory:  "Entertainment",
			wantEssential: false,
			wantFixed:     false,
		},
		{
			name:          "subscription keyword forces fixed",
			txnName:       "Acme Meditation Subscription",
			wantCategory:  "Subscriptions",
			wantEssential: false,
			wantFixed:     true,
		},
		{
			name:          "membership keyword forces fixed outside fixed categories",
			txnName:       "Museum Membership",
			wantCategory:  "Entertainment",
			wantEssential: false,
			wantFixed:     true,
		},
		{
			name:          "unknown merchant falls back to other",
			txnName:       "Zzyzx Holdings Of Nowhere",
			wantCategory:  "Other",
			wantEssential: false,
			wantFixed:     false,
		},
		{
			name:          "geico is insurance",
			txnName:       "Geico Auto Policy",
			wantCategory:  "Insurance",
			wantEssential: true,
			wantFixed:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := model.Transaction{Name: tt.txnName}
			Categorize(&txn)
			assert.Equal(t, tt.wantCategory, txn.Category)
			assert.Equal(t, tt.wantEssential, txn.Essential, "essential")
			assert.Equal(t, tt.wantFixed, txn.Fixed, "fixed")
		})
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	// Flags are a pure function of the description; repeated runs agree.
	for i := 0; i < 3; i++ {
		txn := model.Transaction{Name: "Walmart Supercenter"}
		Categorize(&txn)
		assert.Equal(t, "Groceries", txn.Category)
		assert.True(t, txn.Essential)
		assert.False(t, txn.Fixed)
	}
}

func TestDetermineType(t *testing.T) {
	tests := []struct {
		name            string
		txnName         string
		amount          float64
		wantType        model.TransactionType
		wantFundamental model.Fundamental
	}{
		{
			name:            "positive amount is income",
			txnName:         "Acme Payroll",
			amount:          2500.00,
			wantType:        model.TypeIncome,
			wantFundamental: model.FundamentalIncome,
		},
		{
			name:            "positive dividend is investment",
			txnName:         "Dividend Received",
			amount:          12.34,
			wantType:        model.TypeInvestment,
			wantFundamental: model.FundamentalInvestments,
		},
		{
			name:            "positive interest is investment",
			txnName:         "Interest Earned",
			amount:          0.42,
			wantType:        model.TypeInvestment,
			wantFundamental: model.FundamentalInvestments,
		},
		{
			name:            "mortgage outflow is debt",
			txnName:         "Mortgage Payment",
			amount:          -1500.00,
			wantType:        model.TypeDebt,
			wantFundamental: model.FundamentalDebts,
		},
		{
			name:            "credit card payment outflow is debt",
			txnName:         "Credit Card Payment",
			amount:          -300.00,
			wantType:        model.TypeDebt,
			wantFundamental: model.FundamentalDebts,
		},
		{
			name:            "transfer to savings is savings",
			txnName:         "Transfer to Savings",
			amount:          -200.00,
			wantType:        model.TypeSavings,
			wantFundamental: model.FundamentalSavings,
		},
		{
			name:            "401k contribution is investment",
			txnName:         "401k Contribution",
			amount:          -400.00,
			wantType:        model.TypeInvestment,
			wantFundamental: model.FundamentalInvestments,
		},
		{
			name:            "ordinary outflow is expense",
			txnName:         "Walmart",
			amount:          -100.00,
			wantType:        model.TypeExpense,
			wantFundamental: model.FundamentalExpenses,
		},
		{
			name:            "zero amount is expense",
			txnName:         "Walmart",
			amount:          0,
			wantType:        model.TypeExpense,
			wantFundamental: model.FundamentalExpenses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := model.Transaction{Name: tt.txnName, Amount: tt.amount}
			DetermineType(&txn)
			assert.Equal(t, tt.wantType, txn.Type)
			assert.Equal(t, tt.wantFundamental, txn.Fundamental)
		})
	}
}

func TestCategoryPatterns_PrecedenceContract(t *testing.T) {
	// The table is ordered; these anchors guard against accidental
	// reordering that would silently change categorization.
	assert.Equal(t, "Groceries", CategoryPatterns[0].Name)

	index := make(map[string]int, len(CategoryPatterns))
	for i, c := range CategoryPatterns {
		index[c.Name] = i
	}
	assert.Less(t, index["Groceries"], index["Shopping"])
	assert.Less(t, index["Housing"], index["Debt"])
	assert.Less(t, index["Entertainment"], index["Subscriptions"])
}
