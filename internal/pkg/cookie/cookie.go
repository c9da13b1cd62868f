package cookie

import (
	"net/http"
	"strings"
	"time"

	"groomer-crm/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	bearerPrefix = "Bearer "
)

// Tokens is what login and refresh hand back to the browser.
type Tokens struct {
	Access     string
	Refresh    string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func SetTokens(c *gin.Context, cfg config.CookieConfig, t Tokens) {
	c.SetSameSite(sameSite(cfg.SameSite))
	set(c, cfg, AccessTokenCookieName, t.Access, int(t.AccessTTL.Seconds()))
	set(c, cfg, RefreshTokenCookieName, t.Refresh, int(t.RefreshTTL.Seconds()))
}

func Clear(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	set(c, cfg, AccessTokenCookieName, "", -1)
	set(c, cfg, RefreshTokenCookieName, "", -1)
}

// AccessToken prefers the cookie and falls back to an Authorization: Bearer
// header for API clients.
func AccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return ""
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func sameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
