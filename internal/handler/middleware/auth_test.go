//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/handler/middleware"
	"travel-deals/internal/pkg/cookie"
	"travel-deals/tests/common/httptest"
	usecasemock "travel-deals/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	m := middleware.NewAuthMiddleware(s.mockValidator)
	s.router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	})
	s.router.GET("/admin", m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("success: bearer header", func() {
		s.mockValidator.EXPECT().ValidateToken("header-token").Return(userID, user.RoleUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "header-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["id"])
		s.Equal("user", body["role"])
	})

	s.Run("success: cookie wins over header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(userID, user.RoleAdmin, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}, "header-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body["role"])
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 when validation fails", func() {
		s.mockValidator.EXPECT().ValidateToken("stale").Return(uuid.Nil, user.Role(""), errors.New("token expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "stale")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.Run("success: admin cookie", func() {
		s.mockValidator.EXPECT().ValidateAdminToken("admin-token").Return(nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/admin", nil,
			[]*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: "admin-token"}}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin session required")
	})

	s.Run("error: user access token is not an admin session", func() {
		s.mockValidator.EXPECT().ValidateAdminToken("user-access").Return(errors.New("wrong token type")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "user-access")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired admin session")
	})
}
