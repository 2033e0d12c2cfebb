package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
)

// privilegeService is the single authorization gate. It caches role
// definitions in memory behind an explicit load state; until a load succeeds,
// and whenever one fails, every check denies. There is no code path that
// answers an authorization question while the cache is in doubt.
type privilegeService struct {
	BaseService
	userRepo portsrepo.UserRepository
	roleRepo portsrepo.RoleRepository

	mu      sync.RWMutex
	roleSet domain.RoleSet
}

// NewPrivilegeService creates the privilege gate in the Loading state. Call
// Refresh before serving traffic; checks deny until it succeeds.
func NewPrivilegeService(userRepo portsrepo.UserRepository, roleRepo portsrepo.RoleRepository) portssvc.PrivilegeSvcFacade {
	return &privilegeService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		roleSet:  domain.RoleSet{State: domain.RoleSetLoading},
	}
}

var _ portssvc.PrivilegeSvcFacade = (*privilegeService)(nil)

// Refresh reloads role definitions, replacing the cached set atomically.
func (s *privilegeService) Refresh(ctx context.Context) error {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		s.mu.Lock()
		s.roleSet = domain.RoleSet{State: domain.RoleSetFailed, Reason: err}
		s.mu.Unlock()
		s.LogError(ctx, err, "failed to load role definitions, privilege checks will deny")
		return fmt.Errorf("failed to load role definitions: %w", err)
	}

	byName := make(map[string]domain.Role, len(roles))
	for _, role := range roles {
		byName[role.Name] = role
	}

	s.mu.Lock()
	s.roleSet = domain.RoleSet{State: domain.RoleSetReady, Roles: byName}
	s.mu.Unlock()
	s.LogInfo(ctx, "role definitions loaded", slog.Int("roles", len(roles)))
	return nil
}

// RoleSet returns the current role definitions with their load state.
func (s *privilegeService) RoleSet() domain.RoleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roleSet
}

// Authorize returns nil only when the user exists, is active, and their role
// grants the privilege against a Ready role set.
func (s *privilegeService) Authorize(ctx context.Context, userID string, privilege domain.Privilege) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return fmt.Errorf("user %s is deactivated: %w", userID, apperrors.ErrForbidden)
	}

	rs := s.RoleSet()
	if rs.HasPrivilege(user.RoleName, privilege) {
		return nil
	}
	if rs.State != domain.RoleSetReady {
		s.LogError(ctx, apperrors.ErrForbidden, "privilege check denied, role set not ready",
			slog.String("state", string(rs.State)),
			slog.String("user_id", userID),
			slog.String("privilege", string(privilege)))
	}
	return fmt.Errorf("user %s lacks privilege %q: %w", userID, privilege, apperrors.ErrForbidden)
}

// RequireRole returns nil if the user's role is one of roleNames.
func (s *privilegeService) RequireRole(ctx context.Context, userID string, roleNames ...string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return fmt.Errorf("user %s is deactivated: %w", userID, apperrors.ErrForbidden)
	}
	for _, name := range roleNames {
		if user.RoleName == name {
			return nil
		}
	}
	return fmt.Errorf("user %s role %q not permitted: %w", userID, user.RoleName, apperrors.ErrForbidden)
}
