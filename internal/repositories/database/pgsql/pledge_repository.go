package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	"github.com/jumuiya-app/jumuiya_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxPledgeRepository struct {
	BaseRepository
}

// newPgxPledgeRepository creates a new repository for pledges.
func newPgxPledgeRepository(pool *pgxpool.Pool) *PgxPledgeRepository {
	return &PgxPledgeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PledgeRepository = (*PgxPledgeRepository)(nil)

const pledgeColumns = `pledge_id, member_id, project_id, original_amount, paid_amount, due_date, created_at, created_by, last_updated_at, last_updated_by`

func scanPledge(row pgx.Row) (*domain.Pledge, error) {
	var p domain.Pledge
	err := row.Scan(
		&p.PledgeID,
		&p.MemberID,
		&p.ProjectID,
		&p.OriginalAmount,
		&p.PaidAmount,
		&p.DueDate,
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

// SavePledge inserts a new pledge.
func (r *PgxPledgeRepository) SavePledge(ctx context.Context, pledge domain.Pledge) error {
	query := `
		INSERT INTO pledges (pledge_id, member_id, project_id, original_amount, paid_amount, due_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		pledge.PledgeID,
		pledge.MemberID,
		pledge.ProjectID,
		pledge.OriginalAmount,
		pledge.PaidAmount,
		pledge.DueDate,
		pledge.CreatedAt,
		pledge.CreatedBy,
		pledge.LastUpdatedAt,
		pledge.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: pledge with ID %s already exists", apperrors.ErrDuplicate, pledge.PledgeID)
		}
		return fmt.Errorf("failed to save pledge %s: %w", pledge.PledgeID, err)
	}
	return nil
}

// FindPledgeByID retrieves a single pledge.
func (r *PgxPledgeRepository) FindPledgeByID(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	query := `SELECT ` + pledgeColumns + ` FROM pledges WHERE pledge_id = $1;`
	p, err := scanPledge(r.Pool.QueryRow(ctx, query, pledgeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pledge %s: %w", pledgeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find pledge %s: %w", pledgeID, err)
	}
	return p, nil
}

// ListPledges retrieves a keyset-paginated page of pledges ordered by due
// date descending, then creation time.
func (r *PgxPledgeRepository) ListPledges(ctx context.Context, limit int, nextToken *string) ([]domain.Pledge, *string, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + pledgeColumns + ` FROM pledges`)
	var args []any

	if nextToken != nil && *nextToken != "" {
		lastDueDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		sb.WriteString(` WHERE (due_date, created_at) < ($1, $2)`)
		args = append(args, lastDueDate, lastCreatedAt)
	}

	sb.WriteString(` ORDER BY due_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query pledges: %w", err)
	}
	defer rows.Close()

	pledges := make([]domain.Pledge, 0, limit+1)
	for rows.Next() {
		p, err := scanPledge(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan pledge row: %w", err)
		}
		pledges = append(pledges, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating pledge rows: %w", err)
	}

	var token *string
	if len(pledges) > limit {
		pledges = pledges[:limit]
		last := pledges[limit-1]
		t := pagination.EncodeToken(last.DueDate, last.CreatedAt)
		token = &t
	}
	return pledges, token, nil
}

// UpdatePledge rewrites the pledge's amount and due date. PaidAmount is not
// in the SET list; it only moves through settlements.
func (r *PgxPledgeRepository) UpdatePledge(ctx context.Context, pledge domain.Pledge) error {
	query := `
		UPDATE pledges
		SET original_amount = $2, due_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE pledge_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		pledge.PledgeID,
		pledge.OriginalAmount,
		pledge.DueDate,
		pledge.LastUpdatedAt,
		pledge.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update pledge %s: %w", pledge.PledgeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pledge %s: %w", pledge.PledgeID, apperrors.ErrNotFound)
	}
	return nil
}

// updatePaidAmountCAS swaps the pledge's paid amount, guarded against
// concurrent settlements the same way balances are.
func updatePaidAmountCAS(ctx context.Context, tx pgx.Tx, pledge domain.Pledge, expectedPaid decimal.Decimal) error {
	query := `
		UPDATE pledges
		SET paid_amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE pledge_id = $1 AND paid_amount = $2;
	`
	tag, err := tx.Exec(ctx, query,
		pledge.PledgeID,
		expectedPaid,
		pledge.PaidAmount,
		pledge.LastUpdatedAt,
		pledge.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update paid amount for pledge %s: %w", pledge.PledgeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paid amount for pledge %s changed concurrently: %w", pledge.PledgeID, apperrors.ErrConflict)
	}
	return nil
}

// SettlePledge commits the pledge's new paid amount, the credit posting and
// the account balance swap as one transaction.
func (r *PgxPledgeRepository) SettlePledge(ctx context.Context, pledge domain.Pledge, posting domain.Posting, expectedBalance, newBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	expectedPaid := pledge.PaidAmount.Sub(posting.Amount)
	if err := updatePaidAmountCAS(ctx, tx, pledge, expectedPaid); err != nil {
		return err
	}
	if err := insertPostingTx(ctx, tx, posting); err != nil {
		return err
	}
	if err := updateBalanceCAS(ctx, tx, posting.AccountID, expectedBalance, newBalance, posting.RecordedBy, posting.LastUpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReverseSettlement undoes both sides of a settlement in one transaction.
func (r *PgxPledgeRepository) ReverseSettlement(ctx context.Context, pledge domain.Pledge, postingID string, accountID string, expectedBalance, newBalance decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var amount decimal.Decimal
	err = tx.QueryRow(ctx, `DELETE FROM postings WHERE posting_id = $1 AND account_id = $2 RETURNING amount;`, postingID, accountID).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("posting %s: %w", postingID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete posting %s: %w", postingID, err)
	}

	expectedPaid := pledge.PaidAmount.Add(amount)
	if err := updatePaidAmountCAS(ctx, tx, pledge, expectedPaid); err != nil {
		return err
	}
	if err := updateBalanceCAS(ctx, tx, accountID, expectedBalance, newBalance, pledge.LastUpdatedBy, time.Now()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
