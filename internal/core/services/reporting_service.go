package services

import (
	"context"
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
	"github.com/jumuiya-app/jumuiya_backend/internal/utils"
)

// reportingService computes dashboard figures from posting history and stored
// balances at request time. Nothing here writes.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	settingsRepo  portsrepo.SettingsRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, settingsRepo portsrepo.SettingsRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService:   BaseService{Privilege: privilege},
		reportingRepo: reportingRepo,
		settingsRepo:  settingsRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetSummary returns the dashboard headline figures. Pledge credits count as
// income received.
func (s *reportingService) GetSummary(ctx context.Context, userID string) (*dto.SummaryResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeViewReports); err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.GetKindTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to compute kind totals")
		return nil, err
	}
	pledged, paid, err := s.reportingRepo.GetPledgeTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to compute pledge totals")
		return nil, err
	}
	balances, err := s.reportingRepo.ListAccountBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list account balances")
		return nil, err
	}

	currency := "KES"
	if settings, err := s.settingsRepo.GetSettings(ctx); err == nil {
		currency = settings.CurrencyCode
	}

	totalIncome := totals[domain.Income].Add(totals[domain.PledgeCredit])
	totalExpenditure := totals[domain.Expenditure]
	totalPettyCash := totals[domain.PettyCash]
	net := totalIncome.Sub(totalExpenditure).Sub(totalPettyCash)

	accountBalances := make([]dto.AccountBalance, len(balances))
	for i, b := range balances {
		accountBalances[i] = dto.AccountBalance{
			AccountID:        b.AccountID,
			Name:             b.Name,
			Balance:          b.Balance,
			FormattedBalance: utils.FormatAmount(b.Balance, currency),
		}
	}

	return &dto.SummaryResponse{
		TotalIncome:          totalIncome,
		TotalExpenditure:     totalExpenditure,
		TotalPettyCash:       totalPettyCash,
		NetPosition:          net,
		PledgedTotal:         pledged,
		PledgeOutstanding:    pledged.Sub(paid),
		FormattedNetPosition: utils.FormatAmount(net, currency),
		AccountBalances:      accountBalances,
	}, nil
}

// GetMonthlyReport returns per-month income versus expenditure. A zero range
// defaults to the trailing twelve months.
func (s *reportingService) GetMonthlyReport(ctx context.Context, userID string, from, to time.Time) (*dto.MonthlyReportResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeViewReports); err != nil {
		return nil, err
	}

	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets, err := s.reportingRepo.GetMonthlyTotals(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to compute monthly totals")
		return nil, err
	}

	return &dto.MonthlyReportResponse{
		From:    from,
		To:      to,
		Buckets: dto.ToMonthlyBucketResponses(buckets),
	}, nil
}
