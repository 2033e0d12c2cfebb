package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
)

// PrivilegeSvcFacade is the single authorization gate. All privilege decisions
// in the system go through it; callers never inspect roles directly.
//
// Checks fail closed: while role definitions are loading, or after a load
// failure, every check denies.
type PrivilegeSvcFacade interface {
	// Authorize returns nil if the user holds the privilege. It returns
	// apperrors.ErrForbidden on denial and apperrors.ErrNotFound if the user
	// does not exist.
	Authorize(ctx context.Context, userID string, privilege domain.Privilege) error

	// RequireRole returns nil if the user's role is one of roleNames.
	RequireRole(ctx context.Context, userID string, roleNames ...string) error

	// RoleSet returns the current role definitions with their load state.
	RoleSet() domain.RoleSet

	// Refresh reloads role definitions from storage, replacing the current
	// set atomically. On failure the set moves to Failed and checks deny.
	Refresh(ctx context.Context) error
}
