package dto

import (
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePledgeRequest defines the data needed to record a new pledge.
type CreatePledgeRequest struct {
	MemberID  string          `json:"memberID" binding:"required"`
	ProjectID string          `json:"projectID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	DueDate   time.Time       `json:"dueDate" binding:"required"`
}

// UpdatePledgeRequest defines the mutable fields of a pledge. The pledged
// amount may only grow to at least the amount already paid.
type UpdatePledgeRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	DueDate *time.Time       `json:"dueDate"`
}

// SettlePledgeRequest defines a payment against a pledge. The payment is
// credited to AccountID as a pledge-credit posting.
type SettlePledgeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	AccountID   string          `json:"accountID" binding:"required"`
	PostingDate *time.Time      `json:"postingDate"` // Optional, defaults to now
	Description string          `json:"description"`
}

// PledgeResponse defines the data returned for a pledge. Status is derived at
// response time, never read from storage.
type PledgeResponse struct {
	PledgeID        string          `json:"pledgeID"`
	MemberID        string          `json:"memberID"`
	ProjectID       string          `json:"projectID"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	DueDate         time.Time       `json:"dueDate"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// ToPledgeResponse converts a domain.Pledge to PledgeResponse DTO.
func ToPledgeResponse(p *domain.Pledge, now time.Time) PledgeResponse {
	return PledgeResponse{
		PledgeID:        p.PledgeID,
		MemberID:        p.MemberID,
		ProjectID:       p.ProjectID,
		OriginalAmount:  p.OriginalAmount,
		PaidAmount:      p.PaidAmount,
		RemainingAmount: p.RemainingAmount(),
		DueDate:         p.DueDate,
		Status:          string(domain.DerivePledgeStatus(*p, now)),
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
		LastUpdatedAt:   p.LastUpdatedAt,
		LastUpdatedBy:   p.LastUpdatedBy,
	}
}

// ToPledgeResponses converts a slice of domain.Pledge to []PledgeResponse.
func ToPledgeResponses(pledges []domain.Pledge, now time.Time) []PledgeResponse {
	res := make([]PledgeResponse, len(pledges))
	for i, p := range pledges {
		res[i] = ToPledgeResponse(&p, now)
	}
	return res
}

// ListPledgesParams defines query parameters for listing pledges.
type ListPledgesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPledgesResponse wraps a page of pledges plus the cursor for the next page.
type ListPledgesResponse struct {
	Pledges   []PledgeResponse `json:"pledges"`
	NextToken *string          `json:"nextToken,omitempty"`
}
