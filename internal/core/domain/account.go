package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialAccount represents an organization account (cash box, bank account,
// M-Pesa till) whose stored balance is maintained incrementally on every posting.
//
// Invariant: Balance always equals the opening balance plus the signed sum of all
// postings referencing the account. The ledger service is the sole mutator of
// Balance; no other code path may write it.
type FinancialAccount struct {
	AccountID   string          `json:"accountID"` // Primary key (UUID)
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
