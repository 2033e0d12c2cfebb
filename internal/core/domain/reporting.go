package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the headline figures shown on the dashboard landing page.
type DashboardSummary struct {
	TotalIncome       decimal.Decimal  `json:"totalIncome"`
	TotalExpenditure  decimal.Decimal  `json:"totalExpenditure"`
	TotalPettyCash    decimal.Decimal  `json:"totalPettyCash"`
	PledgedTotal      decimal.Decimal  `json:"pledgedTotal"`
	PledgeOutstanding decimal.Decimal  `json:"pledgeOutstanding"`
	AccountBalances   []AccountBalance `json:"accountBalances"`
}

// AccountBalance pairs an account with its stored balance for summary views.
type AccountBalance struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// MonthlyBucket is one month's income versus expenditure, for the charts.
type MonthlyBucket struct {
	Month       time.Time       `json:"month"` // First day of the month, UTC
	Income      decimal.Decimal `json:"income"`
	Expenditure decimal.Decimal `json:"expenditure"`
}
