package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/ledgersmith/every-penny-counts/internal/model"
)

// Keywords that pin the sign of a credit-card amount regardless of how the
// institution wrote it.
var (
	creditKeywords  = []string{"payment", "credit", "refund", "return"}
	expenseKeywords = []string{"purchase", "sale", "charge", "fee"}
)

// largeChargeThreshold is the magnitude at which a keyword-less credit-card
// amount is assumed to be a charge. Known to misclassify large refunds;
// kept because changing it changes observable output.
const largeChargeThreshold = 1000

// Amount parses a raw amount cell into a signed float. It tolerates a
// currency symbol, comma or whitespace thousands separators and a fully
// parenthesized negative. ok is false for blank cells, literal nan/none
// markers and anything that still fails float parsing after cleanup.
func Amount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none":
		return 0, false
	}

	// Accounting convention: (50.00) means -50.00.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	// Some exports write thousands groups with spaces: "1 000.00".
	s = strings.Join(strings.Fields(s), "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// DebitCredit combines a separate debit/credit column pair into one signed
// amount: credit minus debit, each side defaulting to zero when absent or
// unparseable.
func DebitCredit(debit, credit string) float64 {
	return bareFloat(credit) - bareFloat(debit)
}

func bareFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// AdjustSign applies the account-aware sign policy. Only credit-card
// accounts are adjusted: keyword matches in the lowercased description pin
// the sign, and otherwise a large amount not written in scientific notation
// is assumed to be a charge. raw is the original amount cell ("" for the
// debit/credit case, which never counts as scientific).
func AdjustSign(amount float64, raw string, accountType model.AccountType, description string) float64 {
	if accountType != model.AccountCreditCard {
		return amount
	}

	switch {
	case containsAny(description, creditKeywords):
		return math.Abs(amount)
	case containsAny(description, expenseKeywords):
		return -math.Abs(amount)
	case !isScientific(raw) && math.Abs(amount) >= largeChargeThreshold:
		return -math.Abs(amount)
	default:
		return amount
	}
}

func isScientific(raw string) bool {
	return strings.ContainsAny(raw, "eE")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
