package dto

import (
	"time"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePostingRequest defines the data needed to record a ledger posting.
// The posting kind comes from the route, not the body.
type CreatePostingRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	PostingDate time.Time       `json:"postingDate" binding:"required"`
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// PostingResponse defines the data returned for a posting.
type PostingResponse struct {
	PostingID   string          `json:"postingID"`
	Kind        string          `json:"kind"`
	PostingDate time.Time       `json:"postingDate"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName,omitempty"`
	Description string          `json:"description"`
	PledgeID    *string         `json:"pledgeID,omitempty"`
	RecordedBy  string          `json:"recordedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToPostingResponse converts a domain.Posting to PostingResponse DTO.
func ToPostingResponse(p *domain.Posting) PostingResponse {
	return PostingResponse{
		PostingID:   p.PostingID,
		Kind:        string(p.Kind),
		PostingDate: p.PostingDate,
		Amount:      p.Amount,
		AccountID:   p.AccountID,
		AccountName: p.AccountName,
		Description: p.Description,
		PledgeID:    p.PledgeID,
		RecordedBy:  p.RecordedBy,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPostingResponses converts a slice of domain.Posting to []PostingResponse.
func ToPostingResponses(postings []domain.Posting) []PostingResponse {
	res := make([]PostingResponse, len(postings))
	for i, p := range postings {
		res[i] = ToPostingResponse(&p)
	}
	return res
}

// ListPostingsParams defines query parameters for listing postings.
// NextToken is an opaque cursor from a previous page.
type ListPostingsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPostingsResponse wraps a page of postings plus the cursor for the next page.
type ListPostingsResponse struct {
	Postings  []PostingResponse `json:"postings"`
	NextToken *string           `json:"nextToken,omitempty"`
}
