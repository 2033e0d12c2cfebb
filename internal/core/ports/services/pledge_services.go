package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// PledgeReaderSvc defines read operations for pledges.
type PledgeReaderSvc interface {
	// GetPledgeByID retrieves a specific pledge.
	GetPledgeByID(ctx context.Context, pledgeID string, userID string) (*domain.Pledge, error)

	// ListPledges retrieves a keyset-paginated page of pledges, newest first.
	ListPledges(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Pledge, *string, error)
}

// PledgeWriterSvc defines write operations for pledges.
type PledgeWriterSvc interface {
	// CreatePledge records a new pledge with zero paid amount.
	CreatePledge(ctx context.Context, req dto.CreatePledgeRequest, userID string) (*domain.Pledge, error)

	// UpdatePledge adjusts a pledge's amount or due date. The amount may not
	// drop below what has already been paid.
	UpdatePledge(ctx context.Context, pledgeID string, req dto.UpdatePledgeRequest, userID string) (*domain.Pledge, error)

	// SettlePledge records a payment against the pledge: it increments the
	// paid amount and credits the receiving account in one atomic operation.
	// Payments exceeding the remaining balance fail with
	// apperrors.ErrOverpayment; fully paid pledges fail with
	// apperrors.ErrAlreadySettled.
	SettlePledge(ctx context.Context, pledgeID string, req dto.SettlePledgeRequest, userID string) (*domain.Pledge, error)

	// ReverseSettlement undoes a settlement: it deletes the credit posting,
	// reverses the account balance effect and decrements the paid amount.
	ReverseSettlement(ctx context.Context, pledgeID string, postingID string, userID string) (*domain.Pledge, error)
}

// PledgeSvcFacade combines all pledge-related service interfaces.
type PledgeSvcFacade interface {
	PledgeReaderSvc
	PledgeWriterSvc
}
