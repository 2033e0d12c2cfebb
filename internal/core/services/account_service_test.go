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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockPrivilege   *MockPrivilegeService
	service         portssvc.AccountSvcFacade
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPrivilege = new(MockPrivilegeService)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockPrivilege)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) allowManageAccounts(ctx context.Context) {
	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageAccounts).Return(nil)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	suite.allowManageAccounts(ctx)
	opening := decimal.NewFromInt(1000)
	req := dto.CreateAccountRequest{
		Name:           "Main Cash Box",
		Description:    "Physical cash",
		OpeningBalance: &opening,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.Name == req.Name && a.Balance.Equal(opening) && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.True(account.Balance.Equal(opening))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeOpeningBalance() {
	ctx := context.Background()
	suite.allowManageAccounts(ctx)
	opening := decimal.NewFromInt(-5)
	req := dto.CreateAccountRequest{Name: "Bad Account", OpeningBalance: &opening}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Forbidden() {
	ctx := context.Background()
	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageAccounts).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "X"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DoesNotTouchBalance() {
	ctx := context.Background()
	suite.allowManageAccounts(ctx)
	existing := domain.FinancialAccount{
		AccountID: uuid.NewString(),
		Name:      "Old Name",
		Balance:   decimal.NewFromInt(750),
		IsActive:  true,
	}
	newName := "New Name"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockAccountRepo.On("FindAccountByID", ctx, existing.AccountID).Return(&existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.Name == newName && a.Balance.Equal(decimal.NewFromInt(750))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, existing.AccountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(750)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()
	suite.allowManageAccounts(ctx)
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_DefaultsLimit() {
	ctx := context.Background()
	suite.allowManageAccounts(ctx)

	suite.mockAccountRepo.On("ListAccounts", ctx, 20, 0).Return([]domain.FinancialAccount{}, nil).Once()

	_, err := suite.service.ListAccounts(ctx, suite.userID, 0, -3)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
