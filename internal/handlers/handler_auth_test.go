package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/salestrackhq/salestrack_app/internal/apperrors"
	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/dto"
	"github.com/salestrackhq/salestrack_app/internal/handlers"
	"github.com/salestrackhq/salestrack_app/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Authenticate(ctx context.Context, username, password string, attempts *domain.LoginAttempts) (*domain.Account, error) {
	args := m.Called(ctx, username, password, attempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ResolveByDisplayName(ctx context.Context, displayName string, creatorID string) (*domain.Account, bool, error) {
	args := m.Called(ctx, displayName, creatorID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Bool(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite Setup ---

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAccountService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockService = new(MockAccountService)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "salestrack-test",
		LoginMaxAttempts:  5,
		LoginRateLimit:    "100-M",
	}
	h := handlers.NewAuthHandler(suite.mockService, cfg)

	suite.router = gin.New()
	suite.router.POST("/auth/login", h.Login)
	suite.router.POST("/auth/register", h.Register)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	account := &domain.Account{AccountID: "acc-1", Username: "kim", DisplayName: "Kim"}
	suite.mockService.On("Authenticate", mock.Anything, "kim", "Abcdef1", mock.AnythingOfType("*domain.LoginAttempts")).
		Return(account, nil).Once()

	w := suite.postJSON("/auth/login", dto.LoginRequest{Username: "kim", Password: "Abcdef1"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal("acc-1", resp.Account.AccountID)
	suite.True(resp.ExpiresAt.After(time.Now()))
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentialsGenericMessage() {
	suite.mockService.On("Authenticate", mock.Anything, "kim", "wrong", mock.AnythingOfType("*domain.LoginAttempts")).
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/auth/login", dto.LoginRequest{Username: "kim", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	// The message never says whether the username or the password was wrong.
	suite.Equal("Invalid username or password", resp.Error)
}

func (suite *AuthHandlerTestSuite) TestLogin_LockedOut() {
	suite.mockService.On("Authenticate", mock.Anything, "kim", "Abcdef1", mock.AnythingOfType("*domain.LoginAttempts")).
		Return(nil, apperrors.ErrRateLimited).Once()

	w := suite.postJSON("/auth/login", dto.LoginRequest{Username: "kim", Password: "Abcdef1"})

	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.postJSON("/auth/login", map[string]string{"username": "kim"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Authenticate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	account := &domain.Account{AccountID: "acc-2", Username: "lee", DisplayName: "Lee"}
	suite.mockService.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(account, nil).Once()

	w := suite.postJSON("/auth/register", dto.RegisterRequest{Username: "lee", Password: "Abcdef1", DisplayName: "Lee"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-2", resp.AccountID)
}

func (suite *AuthHandlerTestSuite) TestRegister_WeakPassword() {
	suite.mockService.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.postJSON("/auth/register", dto.RegisterRequest{Username: "lee", Password: "abc", DisplayName: "Lee"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	suite.mockService.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/auth/register", dto.RegisterRequest{Username: "lee", Password: "Abcdef1", DisplayName: "Lee"})

	suite.Equal(http.StatusConflict, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
