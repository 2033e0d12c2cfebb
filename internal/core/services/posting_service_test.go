package services_test

import (
	"context"
	"testing"
	"time"

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

type PostingServiceTestSuite struct {
	suite.Suite
	mockPostingRepo *MockPostingRepository
	mockAccountRepo *MockAccountRepository
	mockLedger      *MockLedgerService
	mockPrivilege   *MockPrivilegeService
	service         portssvc.PostingSvcFacade
	accountID       string
	userID          string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockPostingRepo = new(MockPostingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedger = new(MockLedgerService)
	suite.mockPrivilege = new(MockPrivilegeService)
	suite.service = services.NewPostingService(suite.mockPostingRepo, suite.mockAccountRepo, suite.mockLedger, suite.mockPrivilege)

	suite.accountID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) TestRecordPosting_Success() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(250),
		PostingDate: time.Now(),
		AccountID:   suite.accountID,
		Description: "Sunday collection",
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()
	suite.mockLedger.On("ApplyPosting", ctx, mock.MatchedBy(func(p domain.Posting) bool {
		return p.Kind == domain.Income && p.Amount.Equal(decimal.NewFromInt(250)) && p.AccountID == suite.accountID
	})).Return(nil).Once()

	posting, err := suite.service.RecordPosting(ctx, domain.Income, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(posting)
	suite.NotEmpty(posting.PostingID)
	suite.Equal(suite.userID, posting.RecordedBy)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordPosting_KindPrivilegeMatchesRoute() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(40),
		PostingDate: time.Now(),
		AccountID:   suite.accountID,
		Description: "Stationery",
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManagePettyCash).Return(nil).Once()
	suite.mockLedger.On("ApplyPosting", ctx, mock.MatchedBy(func(p domain.Posting) bool {
		return p.Kind == domain.PettyCash
	})).Return(nil).Once()

	_, err := suite.service.RecordPosting(ctx, domain.PettyCash, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockPrivilege.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordPosting_PermissionDenied() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(250),
		PostingDate: time.Now(),
		AccountID:   suite.accountID,
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageExpenditure).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.RecordPosting(ctx, domain.Expenditure, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLedger.AssertNotCalled(suite.T(), "ApplyPosting", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordPosting_PledgeCreditRejected() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(100),
		PostingDate: time.Now(),
		AccountID:   suite.accountID,
	}

	_, err := suite.service.RecordPosting(ctx, domain.PledgeCredit, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPrivilege.AssertNotCalled(suite.T(), "Authorize", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordPosting_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.Zero,
		PostingDate: time.Now(),
		AccountID:   suite.accountID,
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()

	_, err := suite.service.RecordPosting(ctx, domain.Income, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "ApplyPosting", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordPosting_MissingDate() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(250),
		AccountID:   suite.accountID,
		Description: "Sunday collection",
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()

	_, err := suite.service.RecordPosting(ctx, domain.Income, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "ApplyPosting", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordPosting_MissingDescription() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(250),
		PostingDate: time.Now(),
		AccountID:   suite.accountID,
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()

	_, err := suite.service.RecordPosting(ctx, domain.Income, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "ApplyPosting", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestGetPostingByID_KindMismatch() {
	ctx := context.Background()
	posting := domain.Posting{
		PostingID: uuid.NewString(),
		Kind:      domain.Expenditure,
		Amount:    decimal.NewFromInt(75),
		AccountID: suite.accountID,
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()
	suite.mockPostingRepo.On("FindPostingByID", ctx, posting.PostingID).Return(&posting, nil).Once()

	// An expenditure posting does not exist on the income ledger.
	_, err := suite.service.GetPostingByID(ctx, domain.Income, posting.PostingID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PostingServiceTestSuite) TestDeletePosting_Success() {
	ctx := context.Background()
	posting := domain.Posting{
		PostingID: uuid.NewString(),
		Kind:      domain.PettyCash,
		Amount:    decimal.NewFromInt(30),
		AccountID: suite.accountID,
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManagePettyCash).Return(nil).Once()
	suite.mockPostingRepo.On("FindPostingByID", ctx, posting.PostingID).Return(&posting, nil).Once()
	suite.mockLedger.On("ReversePosting", ctx, posting.PostingID, suite.userID).Return(nil).Once()

	err := suite.service.DeletePosting(ctx, domain.PettyCash, posting.PostingID, suite.userID)

	suite.Require().NoError(err)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestListPostings_ClampsLimit() {
	ctx := context.Background()

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()
	suite.mockPostingRepo.On("ListPostings", ctx, domain.Income, 100, (*string)(nil)).Return([]domain.Posting{}, nil, nil).Once()

	_, _, err := suite.service.ListPostings(ctx, domain.Income, suite.userID, 5000, nil)

	suite.Require().NoError(err)
	suite.mockPostingRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestListPostings_ResolvesAccountNames() {
	ctx := context.Background()
	otherAccountID := uuid.NewString()
	postings := []domain.Posting{
		{PostingID: uuid.NewString(), Kind: domain.Income, Amount: decimal.NewFromInt(100), AccountID: suite.accountID},
		{PostingID: uuid.NewString(), Kind: domain.Income, Amount: decimal.NewFromInt(50), AccountID: otherAccountID},
		{PostingID: uuid.NewString(), Kind: domain.Income, Amount: decimal.NewFromInt(25), AccountID: suite.accountID},
	}
	accounts := map[string]domain.FinancialAccount{
		suite.accountID: {AccountID: suite.accountID, Name: "Main Fund"},
		otherAccountID:  {AccountID: otherAccountID, Name: "Building Fund"},
	}

	suite.mockPrivilege.On("Authorize", ctx, suite.userID, domain.PrivilegeManageIncome).Return(nil).Once()
	suite.mockPostingRepo.On("ListPostings", ctx, domain.Income, 20, (*string)(nil)).Return(postings, nil, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.MatchedBy(func(ids []string) bool {
		// Duplicate account IDs collapse to one lookup each.
		return len(ids) == 2
	})).Return(accounts, nil).Once()

	result, _, err := suite.service.ListPostings(ctx, domain.Income, suite.userID, 20, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Main Fund", result[0].AccountName)
	suite.Equal("Building Fund", result[1].AccountName)
	suite.Equal("Main Fund", result[2].AccountName)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
