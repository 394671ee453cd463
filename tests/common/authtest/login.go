//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"travel-deals/internal/handler/dto/request"
	"travel-deals/internal/pkg/cookie"
	"travel-deals/tests/common/dbtest"
	"travel-deals/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches the hash dbtest.CreateTestUser stores.
const DefaultPassword = "password123"

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email)
	return LoginUser(t, router, email, DefaultPassword)
}

func LoginAdmin(t *testing.T, router *gin.Engine, adminPassword string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Password: adminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	adminCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, adminCookie, "Admin token not found in cookies")
	require.NotEmpty(t, adminCookie.Value, "Admin token cookie is empty")

	return adminCookie.Value
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
