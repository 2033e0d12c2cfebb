package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	"github.com/jumuiya-app/jumuiya_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxPostingRepository struct {
	BaseRepository
}

// newPgxPostingRepository creates a new repository for ledger postings.
func newPgxPostingRepository(pool *pgxpool.Pool) *PgxPostingRepository {
	return &PgxPostingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PostingRepository = (*PgxPostingRepository)(nil)

const postingColumns = `posting_id, kind, posting_date, amount, account_id, description, pledge_id, recorded_by, created_at, created_by, last_updated_at, last_updated_by`

func scanPosting(row pgx.Row) (*domain.Posting, error) {
	var p domain.Posting
	err := row.Scan(
		&p.PostingID,
		&p.Kind,
		&p.PostingDate,
		&p.Amount,
		&p.AccountID,
		&p.Description,
		&p.PledgeID,
		&p.RecordedBy,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func insertPostingTx(ctx context.Context, tx pgx.Tx, posting domain.Posting) error {
	query := `
		INSERT INTO postings (posting_id, kind, posting_date, amount, account_id, description, pledge_id, recorded_by, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		posting.PostingID,
		posting.Kind,
		posting.PostingDate,
		posting.Amount,
		posting.AccountID,
		posting.Description,
		posting.PledgeID,
		posting.RecordedBy,
		posting.CreatedAt,
		posting.CreatedBy,
		posting.LastUpdatedAt,
		posting.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert posting %s: %w", posting.PostingID, err)
	}
	return nil
}

// SavePosting inserts the posting and swaps the account balance in one
// transaction. A swap miss rolls the insert back.
func (r *PgxPostingRepository) SavePosting(ctx context.Context, posting domain.Posting, expectedBalance, newBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertPostingTx(ctx, tx, posting); err != nil {
		return err
	}
	if err := updateBalanceCAS(ctx, tx, posting.AccountID, expectedBalance, newBalance, posting.RecordedBy, posting.LastUpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeletePosting removes the posting and swaps the account balance back in one
// transaction. The delete is keyed on both posting and account so a stale
// caller cannot reverse against the wrong account.
func (r *PgxPostingRepository) DeletePosting(ctx context.Context, postingID string, accountID string, expectedBalance, newBalance decimal.Decimal, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM postings WHERE posting_id = $1 AND account_id = $2;`, postingID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete posting %s: %w", postingID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("posting %s: %w", postingID, apperrors.ErrNotFound)
	}

	if err := updateBalanceCAS(ctx, tx, accountID, expectedBalance, newBalance, userID, time.Now()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindPostingByID retrieves a single posting.
func (r *PgxPostingRepository) FindPostingByID(ctx context.Context, postingID string) (*domain.Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM postings WHERE posting_id = $1;`
	p, err := scanPosting(r.Pool.QueryRow(ctx, query, postingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("posting %s: %w", postingID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find posting %s: %w", postingID, err)
	}
	return p, nil
}

// ListPostings retrieves a keyset-paginated page of postings of one kind,
// newest first. The cursor orders on (posting_date, created_at) descending.
func (r *PgxPostingRepository) ListPostings(ctx context.Context, kind domain.PostingKind, limit int, nextToken *string) ([]domain.Posting, *string, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + postingColumns + ` FROM postings WHERE kind = $1`)
	args := []any{kind}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		sb.WriteString(` AND (posting_date, created_at) < ($2, $3)`)
		args = append(args, lastDate, lastCreatedAt)
	}

	sb.WriteString(` ORDER BY posting_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query postings: %w", err)
	}
	defer rows.Close()

	postings := make([]domain.Posting, 0, limit+1)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan posting row: %w", err)
		}
		postings = append(postings, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating posting rows: %w", err)
	}

	var token *string
	if len(postings) > limit {
		postings = postings[:limit]
		last := postings[limit-1]
		t := pagination.EncodeToken(last.PostingDate, last.CreatedAt)
		token = &t
	}
	return postings, token, nil
}
