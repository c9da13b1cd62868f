//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	cookie.SetTokens(c, config.CookieConfig{SameSite: "Strict", Secure: true}, cookie.Tokens{
		Access:     "access",
		Refresh:    "refresh",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	byName := map[string]*http.Cookie{}
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}
	assert.Equal(t, "access", byName[cookie.AccessTokenCookieName].Value)
	assert.Equal(t, 900, byName[cookie.AccessTokenCookieName].MaxAge)
	assert.True(t, byName[cookie.RefreshTokenCookieName].HttpOnly)
	assert.True(t, byName[cookie.RefreshTokenCookieName].Secure)
	assert.Equal(t, http.SameSiteStrictMode, byName[cookie.RefreshTokenCookieName].SameSite)
}

func TestAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "cookie wins", cookie: "from-cookie", header: "Bearer from-header", want: "from-cookie"},
		{name: "bearer header", header: "Bearer from-header", want: "from-header"},
		{name: "non bearer scheme", header: "Basic abc", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: tc.cookie})
			}
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			c.Request = req

			assert.Equal(t, tc.want, cookie.AccessToken(c))
		})
	}
}
