package repositories

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingRepository persists ledger postings. The posting insert (or delete)
// and the account balance update are committed as a single database
// transaction; on any failure neither write is applied.
type PostingRepository interface {
	// SavePosting inserts the posting and swaps the account balance from
	// expectedBalance to newBalance atomically. Returns apperrors.ErrConflict
	// when the balance no longer equals expectedBalance.
	SavePosting(ctx context.Context, posting domain.Posting, expectedBalance, newBalance decimal.Decimal) error

	// DeletePosting removes the posting and swaps the account balance from
	// expectedBalance to newBalance atomically. Returns apperrors.ErrNotFound
	// when the posting is already gone (double-delete race) and
	// apperrors.ErrConflict when the balance swap loses its race.
	DeletePosting(ctx context.Context, postingID string, accountID string, expectedBalance, newBalance decimal.Decimal, userID string) error

	FindPostingByID(ctx context.Context, postingID string) (*domain.Posting, error)
	ListPostings(ctx context.Context, kind domain.PostingKind, limit int, nextToken *string) ([]domain.Posting, *string, error)
}
