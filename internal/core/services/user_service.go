package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portsrepo "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/repositories"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
	"github.com/jumuiya-app/jumuiya_backend/internal/utils"
)

// userService manages dashboard users. Writes are restricted to the Admin and
// Super Admin roles; credential checks are intentionally uniform so login
// failures never reveal which part of the pair was wrong.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository, privilege portssvc.PrivilegeSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Privilege: privilege},
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) requireAdmin(ctx context.Context, actingUserID string) error {
	if s.Privilege == nil {
		return apperrors.ErrForbidden
	}
	return s.Privilege.RequireRole(ctx, actingUserID, domain.RoleAdmin, domain.RoleSuperAdmin)
}

// validateRoleName checks the role exists in the loaded role set. A non-Ready
// set rejects the write rather than accepting an unverifiable role.
func (s *userService) validateRoleName(roleName string) error {
	rs := s.Privilege.RoleSet()
	if rs.State != domain.RoleSetReady {
		return fmt.Errorf("role definitions unavailable: %w", apperrors.ErrConflict)
	}
	if _, ok := rs.Roles[roleName]; !ok {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, roleName)
	}
	return nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// ListUsers retrieves a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, actingUserID string, limit int, offset int) ([]domain.User, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

// CreateUser creates a local-password user.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actingUserID string) (*domain.User, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	if err := s.validateRoleName(req.RoleName); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		RoleName:     req.RoleName,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save user")
		return nil, err
	}
	s.LogInfo(ctx, "user created", slog.String("user_id", user.UserID), slog.String("role", user.RoleName))
	return &user, nil
}

// InviteUser pre-creates a Google-login user keyed by email.
func (s *userService) InviteUser(ctx context.Context, req dto.InviteUserRequest, actingUserID string) (*domain.User, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	if err := s.validateRoleName(req.RoleName); err != nil {
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		RoleName:     req.RoleName,
		AuthProvider: domain.ProviderGoogle,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save invited user")
		return nil, err
	}
	s.LogInfo(ctx, "user invited", slog.String("user_id", user.UserID), slog.String("role", user.RoleName))
	return &user, nil
}

// UpdateUser updates a user's name, role or active flag.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actingUserID string) (*domain.User, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.RoleName != nil {
		if err := s.validateRoleName(*req.RoleName); err != nil {
			return nil, err
		}
		user.RoleName = *req.RoleName
	}
	if req.IsActive != nil {
		if userID == actingUserID && !*req.IsActive {
			return nil, fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrValidation)
		}
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user", "user_id", userID)
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user. Self-deletion is rejected.
func (s *userService) DeleteUser(ctx context.Context, userID string, actingUserID string) error {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return err
	}
	if userID == actingUserID {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "failed to delete user", "user_id", userID)
		return err
	}
	s.LogInfo(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies an email/password pair against a local user.
func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive || user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrLinkGoogleUser resolves a verified Google identity to a user. Unknown
// identities are rejected, never auto-registered.
func (s *userService) FindOrLinkGoogleUser(ctx context.Context, providerUserID string, email string, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, domain.ProviderGoogle, providerUserID)
	if err == nil {
		if !user.IsActive {
			return nil, apperrors.ErrUnauthorized
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// First sign-in of an invited user: bind the Google subject to the
	// pre-created record.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive || user.AuthProvider != domain.ProviderGoogle || user.ProviderUserID != "" {
		return nil, apperrors.ErrUnauthorized
	}

	user.ProviderUserID = providerUserID
	if name != "" {
		user.Name = name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to link Google identity", "user_id", user.UserID)
		return nil, err
	}
	s.LogInfo(ctx, "Google identity linked", slog.String("user_id", user.UserID))
	return user, nil
}
