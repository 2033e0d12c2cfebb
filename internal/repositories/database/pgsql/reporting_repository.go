package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetKindTotals sums posting amounts per kind.
func (r *PgxReportingRepository) GetKindTotals(ctx context.Context) (map[domain.PostingKind]decimal.Decimal, error) {
	query := `SELECT kind, COALESCE(SUM(amount), 0) FROM postings GROUP BY kind;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query kind totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.PostingKind]decimal.Decimal)
	for rows.Next() {
		var kind domain.PostingKind
		var total decimal.Decimal
		if err := rows.Scan(&kind, &total); err != nil {
			return nil, fmt.Errorf("failed to scan kind total row: %w", err)
		}
		totals[kind] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kind total rows: %w", err)
	}
	return totals, nil
}

// GetPledgeTotals returns the total pledged and total paid across all pledges.
func (r *PgxReportingRepository) GetPledgeTotals(ctx context.Context) (pledged, paid decimal.Decimal, err error) {
	query := `SELECT COALESCE(SUM(original_amount), 0), COALESCE(SUM(paid_amount), 0) FROM pledges;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&pledged, &paid); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to query pledge totals: %w", err)
	}
	return pledged, paid, nil
}

// GetMonthlyTotals buckets income and expenditure postings per calendar month.
func (r *PgxReportingRepository) GetMonthlyTotals(ctx context.Context, from, to time.Time) ([]domain.MonthlyBucket, error) {
	query := `
		SELECT date_trunc('month', posting_date) AS month, kind, COALESCE(SUM(amount), 0)
		FROM postings
		WHERE kind IN ('INCOME', 'EXPENDITURE')
		  AND posting_date >= $1 AND posting_date <= $2
		GROUP BY month, kind
		ORDER BY month ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	byMonth := make(map[time.Time]*domain.MonthlyBucket)
	var order []time.Time
	for rows.Next() {
		var month time.Time
		var kind domain.PostingKind
		var total decimal.Decimal
		if err := rows.Scan(&month, &kind, &total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		month = month.UTC()
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &domain.MonthlyBucket{Month: month}
			byMonth[month] = bucket
			order = append(order, month)
		}
		switch kind {
		case domain.Income:
			bucket.Income = total
		case domain.Expenditure:
			bucket.Expenditure = total
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}

	buckets := make([]domain.MonthlyBucket, len(order))
	for i, month := range order {
		buckets[i] = *byMonth[month]
	}
	return buckets, nil
}

// ListAccountBalances returns every active account with its stored balance.
func (r *PgxReportingRepository) ListAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	query := `SELECT account_id, name, balance FROM accounts WHERE is_active ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountBalance
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.Name, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}
	return balances, nil
}
