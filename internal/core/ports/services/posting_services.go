package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// PostingReaderSvc defines read operations for ledger postings.
type PostingReaderSvc interface {
	// GetPostingByID retrieves a posting of the given kind.
	GetPostingByID(ctx context.Context, kind domain.PostingKind, postingID string, userID string) (*domain.Posting, error)

	// ListPostings retrieves a keyset-paginated page of postings of one kind,
	// newest first. The returned token fetches the next page; nil means done.
	ListPostings(ctx context.Context, kind domain.PostingKind, userID string, limit int, nextToken *string) ([]domain.Posting, *string, error)
}

// PostingWriterSvc defines write operations for ledger postings.
type PostingWriterSvc interface {
	// RecordPosting validates, authorizes and applies a new posting of the
	// given kind, updating the target account balance atomically.
	RecordPosting(ctx context.Context, kind domain.PostingKind, req dto.CreatePostingRequest, userID string) (*domain.Posting, error)

	// DeletePosting removes a posting and reverses its balance effect.
	DeletePosting(ctx context.Context, kind domain.PostingKind, postingID string, userID string) error
}

// PostingSvcFacade combines all posting-related service interfaces.
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
}
