package cookie

import (
	"net/http"
	"time"

	"travel-deals/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
	AdminTokenCookieName   = "admin_token"
	OAuthStateCookieName   = "oauth_state"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1)
	set(c, cfg, RefreshTokenCookieName, "", -1)
}

func SetAdminCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, AdminTokenCookieName, token, int(expiry.Seconds()))
}

func ClearAdminCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AdminTokenCookieName, "", -1)
}

func SetOAuthState(c *gin.Context, cfg config.CookieConfig, state string) {
	set(c, cfg, OAuthStateCookieName, state, int((10 * time.Minute).Seconds()))
}

func PopOAuthState(c *gin.Context, cfg config.CookieConfig) string {
	state, _ := c.Cookie(OAuthStateCookieName)
	set(c, cfg, OAuthStateCookieName, "", -1)
	return state
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func GetAdminToken(c *gin.Context) string {
	token, _ := c.Cookie(AdminTokenCookieName)
	return token
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
