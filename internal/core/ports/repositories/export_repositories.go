package repositories

import "context"

// ExportRepository dumps whole tables as generic row maps for the privileged
// full-data export endpoint.
type ExportRepository interface {
	// ExportTables returns, for each named table, its full row set with column
	// names as keys. Only names from ExportableTables are accepted.
	ExportTables(ctx context.Context, tables []string) (map[string][]map[string]any, error)

	// ExportableTables lists the tables the export endpoint may dump.
	ExportableTables() []string
}
