package repositories

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PledgeRepository persists pledges and their settlements. SettlePledge and
// ReverseSettlement each commit their pledge update, posting write, and
// account balance swap as one database transaction.
type PledgeRepository interface {
	SavePledge(ctx context.Context, pledge domain.Pledge) error
	FindPledgeByID(ctx context.Context, pledgeID string) (*domain.Pledge, error)

	ListPledges(ctx context.Context, limit int, nextToken *string) ([]domain.Pledge, *string, error)

	// UpdatePledge rewrites the pledge's mutable fields (amount, due date).
	// PaidAmount only changes through SettlePledge and ReverseSettlement.
	UpdatePledge(ctx context.Context, pledge domain.Pledge) error

	// SettlePledge writes the pledge's new paid amount, inserts the credit
	// posting, and swaps the target account balance, atomically.
	SettlePledge(ctx context.Context, pledge domain.Pledge, posting domain.Posting, expectedBalance, newBalance decimal.Decimal) error

	// ReverseSettlement undoes both sides of a settlement: decrements the
	// pledge's paid amount, deletes the credit posting, and swaps the account
	// balance back, atomically.
	ReverseSettlement(ctx context.Context, pledge domain.Pledge, postingID string, accountID string, expectedBalance, newBalance decimal.Decimal) error
}
