package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/dto"
	"github.com/jumuiya-app/jumuiya_backend/internal/middleware"
	"github.com/jumuiya-app/jumuiya_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) RecordPosting(ctx context.Context, kind domain.PostingKind, req dto.CreatePostingRequest, userID string) (*domain.Posting, error) {
	args := m.Called(ctx, kind, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

func (m *MockPostingService) GetPostingByID(ctx context.Context, kind domain.PostingKind, postingID string, userID string) (*domain.Posting, error) {
	args := m.Called(ctx, kind, postingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

func (m *MockPostingService) ListPostings(ctx context.Context, kind domain.PostingKind, userID string, limit int, nextToken *string) ([]domain.Posting, *string, error) {
	args := m.Called(ctx, kind, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Posting), returnedNextToken, args.Error(2)
}

func (m *MockPostingService) DeletePosting(ctx context.Context, kind domain.PostingKind, postingID string, userID string) error {
	args := m.Called(ctx, kind, postingID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type PostingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPostingService *MockPostingService
	jwtSecret          string
	userID             string
}

func (suite *PostingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockPostingService = new(MockPostingService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerPostingRoutes(v1, suite.mockPostingService)
}

func (suite *PostingHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *PostingHandlerTestSuite) TestCreatePosting_Success() {
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(250),
		PostingDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		AccountID:   uuid.NewString(),
		Description: "Monthly dues",
	}
	created := &domain.Posting{
		PostingID:   uuid.NewString(),
		Kind:        domain.Income,
		PostingDate: req.PostingDate,
		Amount:      req.Amount,
		AccountID:   req.AccountID,
		Description: req.Description,
		RecordedBy:  suite.userID,
	}

	suite.mockPostingService.On("RecordPosting",
		mock.Anything, domain.Income,
		mock.MatchedBy(func(r dto.CreatePostingRequest) bool {
			return r.Amount.Equal(req.Amount) && r.AccountID == req.AccountID
		}),
		suite.userID,
	).Return(created, nil).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/postings/income", bytes.NewReader(body))
	httpReq.Header.Set("Authorization", suite.authHeader())
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PostingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PostingID, resp.PostingID)
	suite.Equal(string(domain.Income), resp.Kind)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *PostingHandlerTestSuite) TestCreatePosting_Forbidden() {
	req := dto.CreatePostingRequest{
		Amount:      decimal.NewFromInt(50),
		PostingDate: time.Now(),
		AccountID:   uuid.NewString(),
		Description: "Stationery",
	}

	suite.mockPostingService.On("RecordPosting", mock.Anything, domain.Expenditure, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/postings/expenditure", bytes.NewReader(body))
	httpReq.Header.Set("Authorization", suite.authHeader())
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *PostingHandlerTestSuite) TestCreatePosting_MissingToken() {
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/postings/income", bytes.NewReader([]byte(`{}`)))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "RecordPosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingHandlerTestSuite) TestCreatePosting_InvalidBody() {
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/postings/income", bytes.NewReader([]byte(`{"amount":`)))
	httpReq.Header.Set("Authorization", suite.authHeader())
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "RecordPosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingHandlerTestSuite) TestGetPosting_WrongLedgerIsNotFound() {
	postingID := uuid.NewString()

	suite.mockPostingService.On("GetPostingByID", mock.Anything, domain.PettyCash, postingID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/postings/pettycash/"+postingID, nil)
	httpReq.Header.Set("Authorization", suite.authHeader())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PostingHandlerTestSuite) TestListPostings_PassesCursor() {
	cursor := "opaque-cursor"
	next := "next-cursor"
	postings := []domain.Posting{
		{PostingID: uuid.NewString(), Kind: domain.Income, Amount: decimal.NewFromInt(100)},
	}

	suite.mockPostingService.On("ListPostings", mock.Anything, domain.Income, suite.userID, 10,
		mock.MatchedBy(func(t *string) bool { return t != nil && *t == cursor }),
	).Return(postings, next, nil).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/postings/income?limit=10&nextToken="+cursor, nil)
	httpReq.Header.Set("Authorization", suite.authHeader())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPostingsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Postings, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *PostingHandlerTestSuite) TestDeletePosting_Success() {
	postingID := uuid.NewString()

	suite.mockPostingService.On("DeletePosting", mock.Anything, domain.Income, postingID, suite.userID).Return(nil).Once()

	httpReq, _ := http.NewRequest(http.MethodDelete, "/api/v1/postings/income/"+postingID, nil)
	httpReq.Header.Set("Authorization", suite.authHeader())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func TestPostingHandler(t *testing.T) {
	suite.Run(t, new(PostingHandlerTestSuite))
}
