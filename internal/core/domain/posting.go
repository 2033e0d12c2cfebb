package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PostingKind identifies the ledger a posting belongs to and determines the
// sign of its effect on the target account balance.
type PostingKind string

const (
	Income       PostingKind = "INCOME"
	Expenditure  PostingKind = "EXPENDITURE"
	PettyCash    PostingKind = "PETTY_CASH"
	PledgeCredit PostingKind = "PLEDGE_CREDIT" // Credit posted by a pledge settlement
)

// SignedAmount returns the balance delta a posting of this kind contributes.
// Income and pledge credits add to the account; expenditure and petty cash
// subtract from it.
func (k PostingKind) SignedAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	switch k {
	case Income, PledgeCredit:
		return amount, nil
	case Expenditure, PettyCash:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown posting kind %q", k)
	}
}

// Privilege returns the privilege name required to manage postings of this kind.
func (k PostingKind) Privilege() Privilege {
	switch k {
	case Income:
		return PrivilegeManageIncome
	case Expenditure:
		return PrivilegeManageExpenditure
	case PettyCash:
		return PrivilegeManagePettyCash
	default:
		return PrivilegeManagePledges
	}
}

// Posting is a single dated monetary entry against one account. Postings are
// never edited in place: corrections delete the posting (which reverses its
// balance effect) and recreate it, keeping the ledger auditable.
type Posting struct {
	PostingID   string          `json:"postingID"` // Primary key (UUID)
	Kind        PostingKind     `json:"kind"`
	PostingDate time.Time       `json:"postingDate"`
	Amount      decimal.Decimal `json:"amount"`                // Always positive; sign comes from Kind
	AccountID   string          `json:"accountID"`             // FK -> accounts.account_id
	AccountName string          `json:"accountName,omitempty"` // Resolved at read time for listings; not persisted
	Description string          `json:"description"`
	PledgeID    *string         `json:"pledgeID,omitempty"` // Set for PledgeCredit postings
	RecordedBy  string          `json:"recordedBy"`         // Acting user
	AuditFields
}
