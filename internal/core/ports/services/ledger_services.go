package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// LedgerSvc is the sole mutator of account balances. Every posting write and
// delete funnels through it so the stored balance invariant holds.
type LedgerSvc interface {
	// ApplyPosting persists the posting and applies its signed amount to the
	// target account balance atomically. The balance write is optimistic;
	// concurrent writers to the same account are retried internally.
	ApplyPosting(ctx context.Context, posting domain.Posting) error

	// ReversePosting deletes the posting and reverses its balance effect
	// atomically. Returns apperrors.ErrNotFound if the posting was already
	// deleted, so a double delete never double-reverses.
	ReversePosting(ctx context.Context, postingID string, userID string) error
}
