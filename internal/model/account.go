package model

// AccountType classifies the source account. It drives the sign-adjustment
// policy during amount normalization.
type AccountType int

// Account type constants.
const (
	AccountUnknown AccountType = iota
	AccountCreditCard
	AccountBankAccount
	AccountInvestment
)

// String returns a human-readable name for logging.
func (a AccountType) String() string {
	switch a {
	case AccountCreditCard:
		return "credit_card"
	case AccountBankAccount:
		return "bank_account"
	case AccountInvestment:
		return "investment"
	default:
		return "unknown"
	}
}
