package services

import (
	"context"

	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
)

// UserReaderSvc defines read operations for dashboard users.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, actingUserID string, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for dashboard users. All writes are
// gated to administrator roles.
type UserWriterSvc interface {
	// CreateUser creates a local-password user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actingUserID string) (*domain.User, error)

	// InviteUser pre-creates a Google-login user keyed by email.
	InviteUser(ctx context.Context, req dto.InviteUserRequest, actingUserID string) (*domain.User, error)

	// UpdateUser updates a user's name, role or active flag.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actingUserID string) (*domain.User, error)

	// DeleteUser removes a user. A user cannot delete themselves.
	DeleteUser(ctx context.Context, userID string, actingUserID string) error
}

// UserAuthSvc defines the credential checks the auth handlers need.
type UserAuthSvc interface {
	// AuthenticateUser verifies an email/password pair against a local user.
	// Returns apperrors.ErrUnauthorized on any mismatch.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// FindOrLinkGoogleUser resolves a verified Google identity to a user:
	// by provider ID first, then by invited email. Unknown identities are
	// rejected, not auto-registered.
	FindOrLinkGoogleUser(ctx context.Context, providerUserID string, email string, name string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
