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

// accountService manages financial accounts. It never touches Balance after
// creation; balance movement belongs to the ledger service alone.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: BaseService{Privilege: privilege},
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with its opening balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.FinancialAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageAccounts); err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if req.OpeningBalance != nil {
		if req.OpeningBalance.IsNegative() {
			return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
		}
		balance = *req.OpeningBalance
	}

	now := time.Now()
	account := domain.FinancialAccount{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Balance:     balance,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account")
		return nil, err
	}
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.FinancialAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageAccounts); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves a paginated list of accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.FinancialAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageAccounts); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount updates an account's name and description.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.FinancialAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageAccounts); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", "account_id", accountID)
		return nil, err
	}
	return account, nil
}

// DeactivateAccount marks an account as inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.PrivilegeManageAccounts); err != nil {
		return err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now())
}
