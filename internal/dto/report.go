package dto

import (
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse defines the dashboard summary payload. Formatted values use
// the organization's configured currency.
type SummaryResponse struct {
	TotalIncome          decimal.Decimal  `json:"totalIncome"`
	TotalExpenditure     decimal.Decimal  `json:"totalExpenditure"`
	TotalPettyCash       decimal.Decimal  `json:"totalPettyCash"`
	NetPosition          decimal.Decimal  `json:"netPosition"`
	PledgedTotal         decimal.Decimal  `json:"pledgedTotal"`
	PledgeOutstanding    decimal.Decimal  `json:"pledgeOutstanding"`
	FormattedNetPosition string           `json:"formattedNetPosition"`
	AccountBalances      []AccountBalance `json:"accountBalances"`
}

// AccountBalance pairs an account with its balance for the summary view.
type AccountBalance struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	FormattedBalance string          `json:"formattedBalance"`
}

// MonthlyReportParams defines the date range for the monthly report.
type MonthlyReportParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// MonthlyBucketResponse is one month's income versus expenditure.
type MonthlyBucketResponse struct {
	Month       string          `json:"month"` // YYYY-MM
	Income      decimal.Decimal `json:"income"`
	Expenditure decimal.Decimal `json:"expenditure"`
	Net         decimal.Decimal `json:"net"`
}

// MonthlyReportResponse wraps the per-month buckets.
type MonthlyReportResponse struct {
	From    time.Time               `json:"from"`
	To      time.Time               `json:"to"`
	Buckets []MonthlyBucketResponse `json:"buckets"`
}

// ToMonthlyBucketResponses converts domain buckets to their response form.
func ToMonthlyBucketResponses(buckets []domain.MonthlyBucket) []MonthlyBucketResponse {
	res := make([]MonthlyBucketResponse, len(buckets))
	for i, b := range buckets {
		res[i] = MonthlyBucketResponse{
			Month:       b.Month.Format("2006-01"),
			Income:      b.Income,
			Expenditure: b.Expenditure,
			Net:         b.Income.Sub(b.Expenditure),
		}
	}
	return res
}
