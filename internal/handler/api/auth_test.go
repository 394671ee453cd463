//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/handler/api"
	resdto "travel-deals/internal/handler/dto/response"
	"travel-deals/internal/pkg/config"
	"travel-deals/internal/pkg/cookie"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"
	"travel-deals/tests/common/builder"
	"travel-deals/tests/common/httptest"
	"travel-deals/tests/common/testutil"
	commandsmock "travel-deals/tests/mock/commands"
	queriesmock "travel-deals/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://shop.test"

func testSessionSettings() api.SessionSettings {
	cfg := config.NewTestConfig()
	return api.SessionSettings{
		Cookie:        cfg.Cookie,
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		AdminTTL:      8 * time.Hour,
		PublicBaseURL: testBaseURL,
	}
}

// fakeAuth stands in for RequireAuth: any bearer token authenticates as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", userID)
			c.Set("user_role", user.RoleUser)
		}
		c.Next()
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, testSessionSettings())
	s.userID = uuid.New()

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", fakeAuth(s.userID), s.handler.Me)
	s.router.GET("/auth/google", s.handler.GoogleStart)
	s.router.GET("/auth/google/callback", s.handler.GoogleCallback)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func loginResult(userID uuid.UUID) *commands.LoginResult {
	return &commands.LoginResult{
		UserID:    userID,
		Role:      user.RoleUser,
		TokenPair: &commands.TokenPair{AccessToken: "test-access-token", RefreshToken: "test-refresh-token"},
	}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := builder.NewAuthBuilder().BuildSignupDTO()

	s.Run("success: returns 201 and sets session cookies", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(loginResult(s.userID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(s.userID, response.UserID)
		s.Equal("user", response.Role)
		s.Equal("test-access-token", httptest.ExtractCookie(rec, cookie.AccessTokenCookieName).Value)
		s.Equal("test-refresh-token", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "abcdefgh"), expectCode: http.StatusCreated},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(loginResult(s.userID), nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Email & password required")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "email taken", commandsError: commands.ErrEmailTaken, expectedStatus: http.StatusBadRequest, expectedMsg: "Email already registered"},
			{name: "domain validation", commandsError: commands.ErrInvalidRequest, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid email or password"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.Email, reqBody.Password).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(loginResult(s.userID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-access-token", response.AccessToken)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid credentials", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "user inactive", commandsError: commands.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("success: refresh token from cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-refresh").Return(pair, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
		s.Equal("new-refresh", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})

	s.Run("success: refresh token from body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "body-refresh").Return(pair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "body-refresh"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 when no refresh token is sent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: maps usecase errors and clears cookies", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid token", commandsError: commands.ErrTokenValidation, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid or expired refresh token"},
			{name: "user gone", commandsError: commands.ErrUserNotFound, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid or expired refresh token"},
			{name: "user inactive", commandsError: commands.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, tc.commandsError).Times(1)

				cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "stale"}}
				rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)

				cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
				s.Require().NotNil(cleared)
				s.Empty(cleared.Value)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().WithGoogleID("g-123").BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
		s.True(response.HasGoogle)
	})

	s.Run("error: returns 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "user not found", queriesError: queries.ErrUserNotFound, expectedStatus: http.StatusUnauthorized, expectedMsg: "User not authenticated"},
			{name: "user inactive", queriesError: queries.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "Account is inactive"},
			{name: "internal server error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestGoogle() {
	s.Run("start: redirects with a state cookie", func() {
		s.mockCommands.EXPECT().FederatedAuthURL(gomock.Any()).
			DoAndReturn(func(state string) (string, error) {
				return "https://accounts.example/auth?state=" + state, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/google", nil, "")
		state := httptest.ExtractCookie(rec, cookie.OAuthStateCookieName)
		s.Require().NotNil(state)
		s.NotEmpty(state.Value)
		httptest.AssertRedirect(s.T(), rec, "https://accounts.example/auth?state="+state.Value)
	})

	s.Run("start: 404 when google login is not configured", func() {
		s.mockCommands.EXPECT().FederatedAuthURL(gomock.Any()).
			Return("", commands.ErrFederatedLoginOff).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/google", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Google login is not available")
	})

	s.Run("callback: state mismatch redirects to login without exchanging the code", func() {
		cookies := []*http.Cookie{{Name: cookie.OAuthStateCookieName, Value: "expected"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/auth/google/callback?state=forged&code=abc", nil, cookies, "")

		httptest.AssertRedirect(s.T(), rec, testBaseURL+"/login")
	})

	s.Run("callback: success sets session and redirects to account", func() {
		s.mockCommands.EXPECT().LoginFederated(gomock.Any(), "abc").
			Return(loginResult(s.userID), nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.OAuthStateCookieName, Value: "expected"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/auth/google/callback?state=expected&code=abc", nil, cookies, "")

		httptest.AssertRedirect(s.T(), rec, testBaseURL+"/account")
		s.Equal("test-access-token", httptest.ExtractCookie(rec, cookie.AccessTokenCookieName).Value)
	})

	s.Run("callback: exchange failure redirects to login", func() {
		s.mockCommands.EXPECT().LoginFederated(gomock.Any(), "bad").
			Return(nil, commands.ErrFederatedLoginFailed).Times(1)

		cookies := []*http.Cookie{{Name: cookie.OAuthStateCookieName, Value: "expected"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/auth/google/callback?state=expected&code=bad", nil, cookies, "")

		httptest.AssertRedirect(s.T(), rec, testBaseURL+"/login")
	})
}
