package repositories

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// RoleRepository loads role definitions. Roles are administered outside this
// service; the privilege gate only ever reads them.
type RoleRepository interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
