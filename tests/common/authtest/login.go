//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"groomer-crm/internal/handler/dto/request"
	"groomer-crm/internal/handler/dto/response"
	"groomer-crm/tests/common/dbtest"
	"groomer-crm/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
)

// LoginUser logs in through the API and returns the access token. The body
// and the access_token cookie must carry the same token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	httptest.DecodeJSON(t, w, &body)
	require.NotEmpty(t, body.AccessToken)

	cookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cookie, "access_token cookie missing")
	require.Equal(t, body.AccessToken, cookie.Value)
	return body.AccessToken
}

// CreateAndLogin inserts a groomer account and returns its id with a bearer token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email)
	return userID, LoginUser(t, router, email, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()
	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutURL, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
