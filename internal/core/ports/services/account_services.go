package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// AccountReaderSvc defines read operations for financial account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.FinancialAccount, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.FinancialAccount, error)
}

// AccountWriterSvc defines write operations for financial account data.
// Balance is excluded: only the ledger service moves balances.
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.FinancialAccount, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.FinancialAccount, error)

	// DeactivateAccount marks an account as inactive. Inactive accounts reject
	// new postings but keep their history.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
