package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
	"github.com/jumuiya-app/jumuiya_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockPrivilege *MockPrivilegeService
	service       portssvc.UserSvcFacade
	adminID       string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPrivilege = new(MockPrivilegeService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockPrivilege)
	suite.adminID = uuid.NewString()
}

func (suite *UserServiceTestSuite) allowAdmin(ctx context.Context) {
	suite.mockPrivilege.On("RequireRole", ctx, suite.adminID, domain.RoleAdmin, domain.RoleSuperAdmin).Return(nil)
}

func (suite *UserServiceTestSuite) readyRoleSet() domain.RoleSet {
	return domain.RoleSet{
		State: domain.RoleSetReady,
		Roles: map[string]domain.Role{
			"Treasurer": {Name: "Treasurer"},
			"Viewer":    {Name: "Viewer"},
		},
	}
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	suite.allowAdmin(ctx)
	suite.mockPrivilege.On("RoleSet").Return(suite.readyRoleSet())
	req := dto.CreateUserRequest{
		Name:     "New Treasurer",
		Email:    "treasurer@example.org",
		Password: "correct-horse-battery",
		RoleName: "Treasurer",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRole() {
	ctx := context.Background()
	suite.allowAdmin(ctx)
	suite.mockPrivilege.On("RoleSet").Return(suite.readyRoleSet())
	req := dto.CreateUserRequest{
		Name:     "New User",
		Email:    "user@example.org",
		Password: "correct-horse-battery",
		RoleName: "Chancellor",
	}

	_, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_RoleSetNotReady() {
	ctx := context.Background()
	suite.allowAdmin(ctx)
	suite.mockPrivilege.On("RoleSet").Return(domain.RoleSet{State: domain.RoleSetLoading})
	req := dto.CreateUserRequest{
		Name:     "New User",
		Email:    "user@example.org",
		Password: "correct-horse-battery",
		RoleName: "Treasurer",
	}

	_, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *UserServiceTestSuite) TestCreateUser_NotAdmin() {
	ctx := context.Background()
	suite.mockPrivilege.On("RequireRole", ctx, suite.adminID, domain.RoleAdmin, domain.RoleSuperAdmin).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{}, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestInviteUser_NoPassword() {
	ctx := context.Background()
	suite.allowAdmin(ctx)
	suite.mockPrivilege.On("RoleSet").Return(suite.readyRoleSet())
	req := dto.InviteUserRequest{
		Email:    "invitee@example.org",
		Name:     "Invited Viewer",
		RoleName: "Viewer",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.PasswordHash == "" && u.ProviderUserID == ""
	})).Return(nil).Once()

	user, err := suite.service.InviteUser(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_SelfDeactivateRejected() {
	ctx := context.Background()
	suite.allowAdmin(ctx)
	inactive := false
	req := dto.UpdateUserRequest{IsActive: &inactive}
	self := domain.User{UserID: suite.adminID, RoleName: domain.RoleAdmin, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.adminID).Return(&self, nil).Once()

	_, err := suite.service.UpdateUser(ctx, suite.adminID, req, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfRejected() {
	ctx := context.Background()
	suite.allowAdmin(ctx)

	err := suite.service.DeleteUser(ctx, suite.adminID, suite.adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse-battery")
	suite.Require().NoError(err)
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        "treasurer@example.org",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "correct-horse-battery")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UniformFailures() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse-battery")
	suite.Require().NoError(err)
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        "treasurer@example.org",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
	}

	// Unknown email and wrong password produce the same error.
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.org").Return(nil, apperrors.ErrNotFound).Once()
	_, errUnknown := suite.service.AuthenticateUser(ctx, "nobody@example.org", "whatever")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()
	_, errWrongPass := suite.service.AuthenticateUser(ctx, user.Email, "wrong-password")

	suite.ErrorIs(errUnknown, apperrors.ErrUnauthorized)
	suite.ErrorIs(errWrongPass, apperrors.ErrUnauthorized)
	suite.Equal(errUnknown.Error(), errWrongPass.Error())
}

func (suite *UserServiceTestSuite) TestFindOrLinkGoogleUser_LinksInvitedUser() {
	ctx := context.Background()
	providerUserID := "google-subject-123"
	invited := domain.User{
		UserID:       uuid.NewString(),
		Email:        "invitee@example.org",
		AuthProvider: domain.ProviderGoogle,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, invited.Email).Return(&invited, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == invited.UserID && u.ProviderUserID == providerUserID
	})).Return(nil).Once()

	user, err := suite.service.FindOrLinkGoogleUser(ctx, providerUserID, invited.Email, "Invitee Name")

	suite.Require().NoError(err)
	suite.Equal(providerUserID, user.ProviderUserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrLinkGoogleUser_UnknownIdentityRejected() {
	ctx := context.Background()
	providerUserID := "google-subject-456"

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "stranger@example.org").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.FindOrLinkGoogleUser(ctx, providerUserID, "stranger@example.org", "Stranger")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
