package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
)

// exportableTables is the allowlist of tables the export endpoint may dump.
// Table names are interpolated into queries, so nothing outside this list may
// ever reach ExportTables.
var exportableTables = []string{
	"accounts",
	"postings",
	"pledges",
	"members",
	"projects",
	"roles",
	"users",
	"settings",
}

// sensitiveColumns are stripped from every exported row.
var sensitiveColumns = map[string]bool{
	"password_hash":    true,
	"provider_user_id": true,
}

type PgxExportRepository struct {
	BaseRepository
}

// newPgxExportRepository creates a new repository for full-data exports.
func newPgxExportRepository(pool *pgxpool.Pool) *PgxExportRepository {
	return &PgxExportRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExportRepository = (*PgxExportRepository)(nil)

// ExportableTables lists the tables the export endpoint may dump.
func (r *PgxExportRepository) ExportableTables() []string {
	tables := make([]string, len(exportableTables))
	copy(tables, exportableTables)
	return tables
}

// ExportTables dumps each named table as generic row maps.
func (r *PgxExportRepository) ExportTables(ctx context.Context, tables []string) (map[string][]map[string]any, error) {
	allowed := make(map[string]bool, len(exportableTables))
	for _, t := range exportableTables {
		allowed[t] = true
	}

	result := make(map[string][]map[string]any, len(tables))
	for _, table := range tables {
		if !allowed[table] {
			return nil, fmt.Errorf("%w: table %q is not exportable", apperrors.ErrValidation, table)
		}
		rows, err := r.dumpTable(ctx, table)
		if err != nil {
			return nil, err
		}
		result[table] = rows
	}
	return result, nil
}

func (r *PgxExportRepository) dumpTable(ctx context.Context, table string) ([]map[string]any, error) {
	rows, err := r.Pool.Query(ctx, `SELECT * FROM `+table+`;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	dump := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from table %s: %w", table, err)
		}
		row := make(map[string]any, len(fields))
		for i, field := range fields {
			if sensitiveColumns[field.Name] {
				continue
			}
			row[field.Name] = values[i]
		}
		dump = append(dump, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of table %s: %w", table, err)
	}
	return dump, nil
}
