package services

import (
	"context"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// ReportingSvcFacade defines read-only reporting operations. Reports are
// computed from posting history and stored balances at request time.
type ReportingSvcFacade interface {
	// GetSummary returns the dashboard headline figures.
	GetSummary(ctx context.Context, userID string) (*dto.SummaryResponse, error)

	// GetMonthlyReport returns per-month income versus expenditure over
	// [from, to].
	GetMonthlyReport(ctx context.Context, userID string, from, to time.Time) (*dto.MonthlyReportResponse, error)
}
