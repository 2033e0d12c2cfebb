package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PledgeStatus is derived, never stored: the several screens that display it
// must agree, so there is exactly one derivation function.
type PledgeStatus string

const (
	PledgeActive  PledgeStatus = "ACTIVE"
	PledgeOverdue PledgeStatus = "OVERDUE" // Active with a past due date; still settlement-eligible
	PledgePaid    PledgeStatus = "PAID"
)

// Pledge is a member's commitment to contribute a fixed total amount toward a
// project, tracked via cumulative PaidAmount.
//
// Invariant: 0 <= PaidAmount <= OriginalAmount after every settlement. A
// settlement exceeding the remaining balance is rejected, not clamped.
type Pledge struct {
	PledgeID       string          `json:"pledgeID"` // Primary key (UUID)
	MemberID       string          `json:"memberID"`
	ProjectID      string          `json:"projectID"`
	OriginalAmount decimal.Decimal `json:"originalAmount"` // Fixed at creation
	PaidAmount     decimal.Decimal `json:"paidAmount"`     // Monotonically non-decreasing
	DueDate        time.Time       `json:"dueDate"`
	AuditFields
}

// RemainingAmount returns the unsettled portion of the pledge.
func (p Pledge) RemainingAmount() decimal.Decimal {
	return p.OriginalAmount.Sub(p.PaidAmount)
}

// DerivePledgeStatus computes the pledge's status. Paid wins over Overdue:
// a fully settled pledge is Paid regardless of its due date. Overdue is a
// presentation bucket only; it behaves exactly like Active for settlement.
func DerivePledgeStatus(p Pledge, now time.Time) PledgeStatus {
	if p.PaidAmount.GreaterThanOrEqual(p.OriginalAmount) {
		return PledgePaid
	}
	if now.After(p.DueDate) {
		return PledgeOverdue
	}
	return PledgeActive
}
