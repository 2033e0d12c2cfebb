package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// postingService handles the income, expenditure and petty cash ledgers.
// Pledge credits are excluded: they are only written through pledge settlement.
type postingService struct {
	BaseService
	postingRepo portsrepo.PostingRepository
	accountRepo portsrepo.AccountRepository
	ledger      portssvc.LedgerSvc
}

// NewPostingService creates a new PostingService.
func NewPostingService(postingRepo portsrepo.PostingRepository, accountRepo portsrepo.AccountRepository, ledger portssvc.LedgerSvc, privilege portssvc.PrivilegeSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		BaseService: BaseService{Privilege: privilege},
		postingRepo: postingRepo,
		accountRepo: accountRepo,
		ledger:      ledger,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

func validatePostingKind(kind domain.PostingKind) error {
	switch kind {
	case domain.Income, domain.Expenditure, domain.PettyCash:
		return nil
	default:
		return fmt.Errorf("%w: postings of kind %s cannot be recorded directly", apperrors.ErrValidation, kind)
	}
}

// RecordPosting validates, authorizes and applies a new posting.
func (s *postingService) RecordPosting(ctx context.Context, kind domain.PostingKind, req dto.CreatePostingRequest, userID string) (*domain.Posting, error) {
	if err := validatePostingKind(kind); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, kind.Privilege()); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.PostingDate.IsZero() {
		return nil, fmt.Errorf("%w: posting date is required", apperrors.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	now := time.Now()
	posting := domain.Posting{
		PostingID:   uuid.NewString(),
		Kind:        kind,
		PostingDate: req.PostingDate,
		Amount:      req.Amount,
		AccountID:   req.AccountID,
		Description: req.Description,
		RecordedBy:  userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ledger.ApplyPosting(ctx, posting); err != nil {
		s.LogError(ctx, err, "failed to record posting", "kind", string(kind))
		return nil, err
	}
	return &posting, nil
}

// DeletePosting removes a posting and reverses its balance effect. The kind
// comes from the route; a posting of another kind is not found here.
func (s *postingService) DeletePosting(ctx context.Context, kind domain.PostingKind, postingID string, userID string) error {
	if err := validatePostingKind(kind); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, userID, kind.Privilege()); err != nil {
		return err
	}

	posting, err := s.postingRepo.FindPostingByID(ctx, postingID)
	if err != nil {
		return err
	}
	if posting.Kind != kind {
		return apperrors.ErrNotFound
	}

	return s.ledger.ReversePosting(ctx, postingID, userID)
}

// GetPostingByID retrieves a posting of the given kind.
func (s *postingService) GetPostingByID(ctx context.Context, kind domain.PostingKind, postingID string, userID string) (*domain.Posting, error) {
	if err := validatePostingKind(kind); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, kind.Privilege()); err != nil {
		return nil, err
	}

	posting, err := s.postingRepo.FindPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if posting.Kind != kind {
		return nil, apperrors.ErrNotFound
	}
	return posting, nil
}

// ListPostings retrieves a page of postings of one kind, newest first.
func (s *postingService) ListPostings(ctx context.Context, kind domain.PostingKind, userID string, limit int, nextToken *string) ([]domain.Posting, *string, error) {
	if err := validatePostingKind(kind); err != nil {
		return nil, nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, kind.Privilege()); err != nil {
		return nil, nil, err
	}

	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	postings, next, err := s.postingRepo.ListPostings(ctx, kind, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}
	s.resolveAccountNames(ctx, postings)
	return postings, next, nil
}

// resolveAccountNames fills in AccountName for a page of postings. A lookup
// failure leaves the names empty; the listing itself still succeeds.
func (s *postingService) resolveAccountNames(ctx context.Context, postings []domain.Posting) {
	if len(postings) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(postings))
	ids := make([]string, 0, len(postings))
	for _, p := range postings {
		if _, ok := seen[p.AccountID]; !ok {
			seen[p.AccountID] = struct{}{}
			ids = append(ids, p.AccountID)
		}
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "failed to resolve account names for postings")
		return
	}
	for i := range postings {
		if acc, ok := accounts[postings[i].AccountID]; ok {
			postings[i].AccountName = acc.Name
		}
	}
}
