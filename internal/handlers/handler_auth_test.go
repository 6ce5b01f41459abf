package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/SscSPs/lease_management_app/internal/handlers"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/SscSPs/lease_management_app/internal/platform/config"
	"github.com/SscSPs/lease_management_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AuthAndUserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockUser     *MockUserService
	mockToken    *MockTokenService
	mockCurrency *MockCurrencyService
}

func (suite *AuthAndUserHandlerTestSuite) SetupTest() {
	suite.mockUser = new(MockUserService)
	suite.mockToken = new(MockTokenService)
	suite.mockCurrency = new(MockCurrencyService)

	router, v1 := newAPIRouter()
	loginLimiter, err := middleware.NewMemoryLimiter("3-M")
	suite.Require().NoError(err)
	handlers.RegisterAuthRoutes(router, suite.mockUser, suite.mockToken, loginLimiter)
	handlers.RegisterUserRoutes(v1, suite.mockUser)
	handlers.RegisterCurrencyRoutes(v1, suite.mockCurrency)
	suite.router = router
}

func (suite *AuthAndUserHandlerTestSuite) token(actor domain.Actor) string {
	return tokenFor(&suite.Suite, actor)
}

func (suite *AuthAndUserHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: reviewer.UserID, Username: "reviewer", Name: "Reviewer", Role: domain.RoleManagement}
	expiresAt := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	suite.mockUser.On("AuthenticateUser", mock.Anything, "reviewer", "correct-horse").Return(user, nil).Once()
	suite.mockToken.On("GenerateAccessToken", mock.Anything, user).Return("signed.jwt.token", expiresAt, nil).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Username: "reviewer", Password: "correct-horse"}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.Equal("MANAGEMENT", resp.User.Role)
}

func (suite *AuthAndUserHandlerTestSuite) TestLogin_WrongPassword() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "reviewer", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Username: "reviewer", Password: "wrong"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *AuthAndUserHandlerTestSuite) TestLogin_RateLimited() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "ghost", "pw").Return(nil, apperrors.ErrUnauthorized)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := performRequest(suite.router, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "ghost", Password: "pw"}, "")
		codes = append(codes, w.Code)
	}

	suite.Equal([]int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func (suite *AuthAndUserHandlerTestSuite) TestCreateUser() {
	created := &domain.User{UserID: "user-9", Username: "clerk.two", Name: "Clerk Two", Role: domain.RoleDataEntry}
	req := dto.CreateUserRequest{Username: "clerk.two", Password: "password123", Name: "Clerk Two", Role: "DATA_ENTRY"}
	suite.mockUser.On("CreateUser", mock.Anything, req, admin).Return(created, nil).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/users", req, suite.token(admin))

	suite.Equal(http.StatusCreated, w.Code)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *AuthAndUserHandlerTestSuite) TestCreateUser_UnknownRole() {
	req := dto.CreateUserRequest{Username: "x-user", Password: "password123", Name: "X", Role: "SUPERUSER"}

	w := performRequest(suite.router, http.MethodPost, "/api/v1/users", req, suite.token(admin))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), `"field":"role"`)
}

func (suite *AuthAndUserHandlerTestSuite) TestCreateUser_NonAdminForbidden() {
	req := dto.CreateUserRequest{Username: "x-user", Password: "password123", Name: "X", Role: "ADMIN"}
	suite.mockUser.On("CreateUser", mock.Anything, req, clerk).Return(nil, apperrors.ErrForbidden).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/users", req, suite.token(clerk))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AuthAndUserHandlerTestSuite) TestGetUser_OwnRecordOnly() {
	self := &domain.User{UserID: clerk.UserID, Username: "clerk", Role: domain.RoleDataEntry}
	suite.mockUser.On("GetUserByID", mock.Anything, clerk.UserID).Return(self, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/users/"+clerk.UserID, nil, suite.token(clerk))
	suite.Equal(http.StatusOK, w.Code)

	w = performRequest(suite.router, http.MethodGet, "/api/v1/users/admin-1", nil, suite.token(clerk))
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUser.AssertNumberOfCalls(suite.T(), "GetUserByID", 1)
}

func (suite *AuthAndUserHandlerTestSuite) TestListUsers_AdminOnly() {
	suite.mockUser.On("ListUsers", mock.Anything, 20, 0).Return([]domain.User{{UserID: "u1"}, {UserID: "u2"}}, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/users", nil, suite.token(admin))
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Users, 2)

	w = performRequest(suite.router, http.MethodGet, "/api/v1/users", nil, suite.token(reviewer))
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AuthAndUserHandlerTestSuite) TestDeleteUser() {
	suite.mockUser.On("DeleteUser", mock.Anything, "user-9", admin).Return(nil).Once()
	suite.mockUser.On("DeleteUser", mock.Anything, admin.UserID, admin).
		Return(apperrors.NewValidationError("user_id", admin.UserID, "cannot delete yourself")).Once()

	w := performRequest(suite.router, http.MethodDelete, "/api/v1/users/user-9", nil, suite.token(admin))
	suite.Equal(http.StatusNoContent, w.Code)

	w = performRequest(suite.router, http.MethodDelete, "/api/v1/users/"+admin.UserID, nil, suite.token(admin))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthAndUserHandlerTestSuite) TestCurrencies() {
	inr := domain.Currency{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2}
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "INR").Return(&inr, nil).Once()
	suite.mockCurrency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{inr}, nil).Once()
	suite.mockCurrency.On("CreateCurrency", mock.Anything, mock.AnythingOfType("dto.CreateCurrencyRequest"), admin).
		Return(nil, apperrors.NewConflictError("currency INR already exists")).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/currencies/inr", nil, suite.token(reviewer))
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"precision":2`)

	w = performRequest(suite.router, http.MethodGet, "/api/v1/currencies", nil, suite.token(reviewer))
	suite.Equal(http.StatusOK, w.Code)

	w = performRequest(suite.router, http.MethodPost, "/api/v1/currencies",
		dto.CreateCurrencyRequest{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"}, suite.token(admin))
	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestAuthAndUserHandler(t *testing.T) {
	suite.Run(t, new(AuthAndUserHandlerTestSuite))
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	router := gin.New()
	router.Use(m.GinMiddleware())
	cfg := &config.Config{JWTSecret: testJWTSecret, LoginRateLimit: "5-M", APIRateLimit: "not-a-rate"}
	lease := new(MockLeaseService)
	container := &portssvc.ServiceContainer{
		Lease:        lease,
		Project:      new(MockProjectService),
		Unit:         new(MockUnitService),
		Party:        new(MockPartyService),
		Ownership:    new(MockOwnershipService),
		Currency:     new(MockCurrencyService),
		User:         new(MockUserService),
		TokenService: new(MockTokenService),
	}
	handlers.RegisterRoutes(router, cfg, container, reg)

	w := performRequest(router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = performRequest(router, http.MethodGet, "/api/v1/leases", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(router, http.MethodGet, "/swagger/index.html", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lms_http_requests_total{method="GET",route="/api/v1/leases",status="401"} 1`)
}

func TestRegisterRoutes_NoSwaggerInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{}, nil)

	w := performRequest(router, http.MethodGet, "/swagger/index.html", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
