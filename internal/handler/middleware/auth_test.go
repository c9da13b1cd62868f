//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/pkg/cookie"
	usecasemock "groomer-crm/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ownerID := uuid.New()

	testCases := []struct {
		name       string
		setup      func(req *http.Request)
		mock       func(m *usecasemock.MockTokenValidator)
		expectCode int
	}{
		{
			name: "cookie token",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "good"})
			},
			mock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(ownerID, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name: "bearer token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer good")
			},
			mock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(ownerID, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "no token",
			setup:      func(*http.Request) {},
			mock:       func(*usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer bad")
			},
			mock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("bad").Return(uuid.Nil, errors.New("expired"))
			},
			expectCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.mock(validator)

			var seen uuid.UUID
			router := gin.New()
			router.Use(middleware.NewAuthMiddleware(validator).RequireAuth())
			router.GET("/api/clients", func(c *gin.Context) {
				seen, _ = middleware.GetUserID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectCode == http.StatusOK {
				assert.Equal(t, ownerID, seen)
			} else {
				assert.Contains(t, rec.Body.String(), "Unauthorized")
			}
		})
	}
}
