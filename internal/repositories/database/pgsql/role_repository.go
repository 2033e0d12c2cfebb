package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
)

type PgxRoleRepository struct {
	BaseRepository
}

// newPgxRoleRepository creates a new repository for role definitions.
func newPgxRoleRepository(pool *pgxpool.Pool) *PgxRoleRepository {
	return &PgxRoleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.RoleRepository = (*PgxRoleRepository)(nil)

// ListRoles loads every role with its privilege set.
func (r *PgxRoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	query := `SELECT role_name, privileges, created_at, created_by, last_updated_at, last_updated_by FROM roles ORDER BY role_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		var privileges []string
		err := rows.Scan(
			&role.Name,
			&privileges,
			&role.CreatedAt,
			&role.CreatedBy,
			&role.LastUpdatedAt,
			&role.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		role.Privileges = make([]domain.Privilege, len(privileges))
		for i, p := range privileges {
			role.Privileges[i] = domain.Privilege(p)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}
	return roles, nil
}
