package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	reqdto "travel-deals/internal/handler/dto/request"
	resdto "travel-deals/internal/handler/dto/response"
	"travel-deals/internal/handler/httperr"
	"travel-deals/internal/handler/middleware"
	"travel-deals/internal/pkg/cookie"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds     commands.AuthCommands
	users    queries.UserQueries
	settings SessionSettings
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, settings SessionSettings) *AuthHandler {
	return &AuthHandler{
		cmds:     cmds,
		users:    users,
		settings: settings,
	}
}

// @Summary User signup
// @Description Register with email and password and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email & password required", nil)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already registered", nil)
		case errs.Is(err, commands.ErrInvalidRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.startSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.startSession(c, http.StatusOK, result)
}

// @Summary Refresh session
// @Description Exchange a refresh token (cookie or body) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
				return
			}
		}
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrTokenValidation), errs.Is(err, commands.ErrUserNotFound):
			cookie.ClearTokenCookies(c, h.settings.Cookie)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		case errs.Is(err, commands.ErrUserInactive):
			cookie.ClearTokenCookies(c, h.settings.Cookie)
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.settings.Cookie, pair.AccessToken, pair.RefreshToken, h.settings.AccessTTL, h.settings.RefreshTTL)
	c.JSON(http.StatusOK, resdto.SessionResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.settings.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "User not authenticated", nil)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "User not authenticated", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	out, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Google login
// @Description Redirect to Google with a fresh state cookie
// @Tags auth
// @Success 302
// @Failure 404 {object} httperr.Response
// @Router /auth/google [get]
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	state, err := newOAuthState()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	target, err := h.cmds.FederatedAuthURL(state)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Google login is not available", nil)
		return
	}

	cookie.SetOAuthState(c, h.settings.Cookie, state)
	c.Redirect(http.StatusFound, target)
}

// @Summary Google login callback
// @Description Verify state, exchange the code and start a session
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 302
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	expected := cookie.PopOAuthState(c, h.settings.Cookie)
	got := c.Query("state")
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		slog.Warn("google callback with mismatched state")
		_ = c.Error(errStateInvalid)
		c.Redirect(http.StatusFound, h.settings.PublicBaseURL+"/login")
		return
	}

	result, err := h.cmds.LoginFederated(c.Request.Context(), c.Query("code"))
	if err != nil {
		slog.Warn("google login failed", "error", err.Error())
		_ = c.Error(err)
		c.Redirect(http.StatusFound, h.settings.PublicBaseURL+"/login")
		return
	}

	cookie.SetTokenCookies(c, h.settings.Cookie, result.TokenPair.AccessToken, result.TokenPair.RefreshToken, h.settings.AccessTTL, h.settings.RefreshTTL)
	c.Redirect(http.StatusFound, h.settings.PublicBaseURL+"/account")
}

func (h *AuthHandler) startSession(c *gin.Context, status int, result *commands.LoginResult) {
	// any previous session cookie is overwritten by the fresh pair
	cookie.SetTokenCookies(c, h.settings.Cookie, result.TokenPair.AccessToken, result.TokenPair.RefreshToken, h.settings.AccessTTL, h.settings.RefreshTTL)
	c.JSON(status, resdto.SessionResponse{
		UserID:       result.UserID,
		Role:         result.Role.String(),
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
	})
}
