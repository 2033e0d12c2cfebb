package repositories

import (
	"context"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for financial accounts.
//
// The balance column is written only by the posting and pledge repositories,
// inside their own transactions via a compare-and-swap update; nothing here
// touches it.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.FinancialAccount) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.FinancialAccount, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.FinancialAccount, error)
	UpdateAccount(ctx context.Context, account domain.FinancialAccount) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}
