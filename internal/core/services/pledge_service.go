package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// pledgeService tracks member pledges and their settlements. A settlement is
// the one place a pledge-credit posting is created; the repository commits the
// pledge update, the posting and the account balance swap together.
type pledgeService struct {
	BaseService
	pledgeRepo  portsrepo.PledgeRepository
	postingRepo portsrepo.PostingRepository
	accountRepo portsrepo.AccountRepository
	memberRepo  portsrepo.MemberRepository
	projectRepo portsrepo.ProjectRepository
}

// NewPledgeService creates a new PledgeService.
func NewPledgeService(
	pledgeRepo portsrepo.PledgeRepository,
	postingRepo portsrepo.PostingRepository,
	accountRepo portsrepo.AccountRepository,
	memberRepo portsrepo.MemberRepository,
	projectRepo portsrepo.ProjectRepository,
	privilege portssvc.PrivilegeSvcFacade,
) portssvc.PledgeSvcFacade {
	return &pledgeService{
		BaseService: BaseService{Privilege: privilege},
		pledgeRepo:  pledgeRepo,
		postingRepo: postingRepo,
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.PledgeSvcFacade = (*pledgeService)(nil)

// CreatePledge records a new pledge with zero paid amount.
func (s *pledgeService) CreatePledge(ctx context.Context, req dto.CreatePledgeRequest, userID string) (*domain.Pledge, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManagePledges); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: pledge amount must be positive", apperrors.ErrValidation)
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", apperrors.ErrValidation)
	}
	if _, err := s.memberRepo.FindMemberByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: member %s not found", apperrors.ErrValidation, req.MemberID)
		}
		return nil, err
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: project %s not found", apperrors.ErrValidation, req.ProjectID)
		}
		return nil, err
	}

	now := time.Now()
	pledge := domain.Pledge{
		PledgeID:       uuid.NewString(),
		MemberID:       req.MemberID,
		ProjectID:      req.ProjectID,
		OriginalAmount: req.Amount,
		PaidAmount:     decimal.Zero,
		DueDate:        req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.pledgeRepo.SavePledge(ctx, pledge); err != nil {
		s.LogError(ctx, err, "failed to save pledge")
		return nil, err
	}
	return &pledge, nil
}

// GetPledgeByID retrieves a specific pledge.
func (s *pledgeService) GetPledgeByID(ctx context.Context, pledgeID string, userID string) (*domain.Pledge, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManagePledges); err != nil {
		return nil, err
	}
	return s.pledgeRepo.FindPledgeByID(ctx, pledgeID)
}

// ListPledges retrieves a page of pledges, newest first.
func (s *pledgeService) ListPledges(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Pledge, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManagePledges); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.pledgeRepo.ListPledges(ctx, limit, nextToken)
}

// UpdatePledge adjusts a pledge's amount or due date.
func (s *pledgeService) UpdatePledge(ctx context.Context, pledgeID string, req dto.UpdatePledgeRequest, userID string) (*domain.Pledge, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManagePledges); err != nil {
		return nil, err
	}

	pledge, err := s.pledgeRepo.FindPledgeByID(ctx, pledgeID)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: pledge amount must be positive", apperrors.ErrValidation)
		}
		if req.Amount.LessThan(pledge.PaidAmount) {
			return nil, fmt.Errorf("%w: pledge amount cannot drop below the %s already paid",
				apperrors.ErrValidation, pledge.PaidAmount.String())
		}
		pledge.OriginalAmount = *req.Amount
	}
	if req.DueDate != nil {
		pledge.DueDate = *req.DueDate
	}
	pledge.LastUpdatedAt = time.Now()
	pledge.LastUpdatedBy = userID

	if err := s.pledgeRepo.UpdatePledge(ctx, *pledge); err != nil {
		s.LogError(ctx, err, "failed to update pledge", "pledge_id", pledgeID)
		return nil, err
	}
	return pledge, nil
}

// SettlePledge records a payment against the pledge. The payment is rejected,
// never clamped, when it exceeds the remaining balance.
func (s *pledgeService) SettlePledge(ctx context.Context, pledgeID string, req dto.SettlePledgeRequest, userID string) (*domain.Pledge, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManagePledges); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: settlement amount must be positive", apperrors.ErrValidation)
	}

	postingDate := time.Now()
	if req.PostingDate != nil {
		postingDate = *req.PostingDate
	}

	for attempt := 1; attempt <= maxBalanceRetries; attempt++ {
		pledge, err := s.pledgeRepo.FindPledgeByID(ctx, pledgeID)
		if err != nil {
			return nil, err
		}
		remaining := pledge.RemainingAmount()
		if remaining.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.ErrAlreadySettled
		}
		if req.Amount.GreaterThan(remaining) {
			return nil, fmt.Errorf("settlement of %s exceeds remaining pledge balance %s: %w",
				req.Amount.String(), remaining.String(), apperrors.ErrOverpayment)
		}

		account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to load account %s: %w", req.AccountID, err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountInactive.Error())
		}

		now := time.Now()
		updated := *pledge
		updated.PaidAmount = pledge.PaidAmount.Add(req.Amount)
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID

		posting := domain.Posting{
			PostingID:   uuid.NewString(),
			Kind:        domain.PledgeCredit,
			PostingDate: postingDate,
			Amount:      req.Amount,
			AccountID:   req.AccountID,
			Description: req.Description,
			PledgeID:    &updated.PledgeID,
			RecordedBy:  userID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}

		newBalance := account.Balance.Add(req.Amount)
		err = s.pledgeRepo.SettlePledge(ctx, updated, posting, account.Balance, newBalance)
		if err == nil {
			s.LogInfo(ctx, "pledge settled",
				slog.String("pledge_id", pledgeID),
				slog.String("posting_id", posting.PostingID),
				slog.String("amount", req.Amount.String()),
				slog.String("status", string(domain.DerivePledgeStatus(updated, now))))
			return &updated, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "failed to settle pledge", "pledge_id", pledgeID)
			return nil, err
		}
		s.LogDebug(ctx, "settlement conflict, retrying",
			slog.String("pledge_id", pledgeID),
			slog.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("pledge %s settlement contention exceeded %d attempts: %w",
		pledgeID, maxBalanceRetries, apperrors.ErrConflict)
}

// ReverseSettlement undoes a settlement by its credit posting.
func (s *pledgeService) ReverseSettlement(ctx context.Context, pledgeID string, postingID string, userID string) (*domain.Pledge, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManagePledges); err != nil {
		return nil, err
	}

	posting, err := s.postingRepo.FindPostingByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if posting.Kind != domain.PledgeCredit || posting.PledgeID == nil || *posting.PledgeID != pledgeID {
		return nil, apperrors.ErrNotFound
	}

	for attempt := 1; attempt <= maxBalanceRetries; attempt++ {
		pledge, err := s.pledgeRepo.FindPledgeByID(ctx, pledgeID)
		if err != nil {
			return nil, err
		}
		newPaid := pledge.PaidAmount.Sub(posting.Amount)
		if newPaid.IsNegative() {
			return nil, fmt.Errorf("%w: reversal would drop paid amount below zero", apperrors.ErrValidation)
		}

		account, err := s.accountRepo.FindAccountByID(ctx, posting.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to load account %s: %w", posting.AccountID, err)
		}

		updated := *pledge
		updated.PaidAmount = newPaid
		updated.LastUpdatedAt = time.Now()
		updated.LastUpdatedBy = userID

		newBalance := account.Balance.Sub(posting.Amount)
		err = s.pledgeRepo.ReverseSettlement(ctx, updated, postingID, posting.AccountID, account.Balance, newBalance)
		if err == nil {
			s.LogInfo(ctx, "settlement reversed",
				slog.String("pledge_id", pledgeID),
				slog.String("posting_id", postingID))
			return &updated, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "failed to reverse settlement", "pledge_id", pledgeID)
			return nil, err
		}
		s.LogDebug(ctx, "reversal conflict, retrying",
			slog.String("pledge_id", pledgeID),
			slog.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("pledge %s reversal contention exceeded %d attempts: %w",
		pledgeID, maxBalanceRetries, apperrors.ErrConflict)
}
