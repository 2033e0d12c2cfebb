package repositories

import (
	"context"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository runs the aggregate queries behind the dashboard reports.
// Reports read posting history; account balances come from the stored column.
type ReportingRepository interface {
	// GetKindTotals sums posting amounts per kind.
	GetKindTotals(ctx context.Context) (map[domain.PostingKind]decimal.Decimal, error)

	// GetPledgeTotals returns the total pledged and total paid across all pledges.
	GetPledgeTotals(ctx context.Context) (pledged, paid decimal.Decimal, err error)

	// GetMonthlyTotals buckets income and expenditure postings per calendar
	// month over [from, to].
	GetMonthlyTotals(ctx context.Context, from, to time.Time) ([]domain.MonthlyBucket, error)

	// ListAccountBalances returns every active account with its stored balance.
	ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
}
