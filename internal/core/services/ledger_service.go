package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
)

// maxBalanceRetries bounds the optimistic retry loop on concurrent balance
// writes to the same account.
const maxBalanceRetries = 3

var (
	ErrAccountInactive = errors.New("account is inactive")
)

// ledgerService is the only code path that moves account balances. Each write
// reads the current balance, computes the new one and hands both to the
// repository, which applies them with a compare-and-swap inside the same
// transaction as the posting row. A swap miss means another writer got there
// first; the whole read-compute-write is retried from a fresh balance.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	postingRepo portsrepo.PostingRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepository, postingRepo portsrepo.PostingRepository) portssvc.LedgerSvc {
	return &ledgerService{
		accountRepo: accountRepo,
		postingRepo: postingRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// ApplyPosting persists the posting and moves the account balance by its
// signed amount.
func (s *ledgerService) ApplyPosting(ctx context.Context, posting domain.Posting) error {
	delta, err := posting.Kind.SignedAmount(posting.Amount)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	for attempt := 1; attempt <= maxBalanceRetries; attempt++ {
		account, err := s.accountRepo.FindAccountByID(ctx, posting.AccountID)
		if err != nil {
			return fmt.Errorf("failed to load account %s: %w", posting.AccountID, err)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAccountInactive.Error())
		}

		newBalance := account.Balance.Add(delta)
		err = s.postingRepo.SavePosting(ctx, posting, account.Balance, newBalance)
		if err == nil {
			s.LogInfo(ctx, "posting applied",
				slog.String("posting_id", posting.PostingID),
				slog.String("account_id", posting.AccountID),
				slog.String("kind", string(posting.Kind)),
				slog.String("new_balance", newBalance.String()))
			return nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		s.LogDebug(ctx, "balance write conflict, retrying",
			slog.String("account_id", posting.AccountID),
			slog.Int("attempt", attempt))
	}

	return fmt.Errorf("account %s balance contention exceeded %d attempts: %w",
		posting.AccountID, maxBalanceRetries, apperrors.ErrConflict)
}

// ReversePosting deletes the posting and moves the account balance back by its
// signed amount. Inactive accounts still accept reversals so history stays
// correctable.
func (s *ledgerService) ReversePosting(ctx context.Context, postingID string, userID string) error {
	posting, err := s.postingRepo.FindPostingByID(ctx, postingID)
	if err != nil {
		return err
	}

	delta, err := posting.Kind.SignedAmount(posting.Amount)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	for attempt := 1; attempt <= maxBalanceRetries; attempt++ {
		account, err := s.accountRepo.FindAccountByID(ctx, posting.AccountID)
		if err != nil {
			return fmt.Errorf("failed to load account %s: %w", posting.AccountID, err)
		}

		newBalance := account.Balance.Sub(delta)
		err = s.postingRepo.DeletePosting(ctx, postingID, posting.AccountID, account.Balance, newBalance, userID)
		if err == nil {
			s.LogInfo(ctx, "posting reversed",
				slog.String("posting_id", postingID),
				slog.String("account_id", posting.AccountID),
				slog.String("new_balance", newBalance.String()))
			return nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		s.LogDebug(ctx, "balance write conflict, retrying",
			slog.String("account_id", posting.AccountID),
			slog.Int("attempt", attempt))
	}

	return fmt.Errorf("account %s balance contention exceeded %d attempts: %w",
		posting.AccountID, maxBalanceRetries, apperrors.ErrConflict)
}
