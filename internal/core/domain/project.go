package domain

import "github.com/shopspring/decimal"

// Project is a fundraising initiative that pledges are made toward.
type Project struct {
	ProjectID    string          `json:"projectID"` // Primary key (UUID)
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
