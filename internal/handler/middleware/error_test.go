//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"groomer-crm/internal/handler/httperr"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/pkg/config"
	testhttp "groomer-crm/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/public", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("pet lookup failed"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.New(http.StatusNotFound, "Pet not found", nil),
		})
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	router.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("公開エラーはそのまま返す", func(t *testing.T) {
		w := testhttp.PerformRequest(t, router, http.MethodGet, "/public", nil, "")
		testhttp.AssertErrorResponse(t, w, http.StatusNotFound, "Pet not found")
	})

	t.Run("非公開エラーは500に丸める", func(t *testing.T) {
		w := testhttp.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		testhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("エラーなしは触らない", func(t *testing.T) {
		w := testhttp.PerformRequest(t, router, http.MethodGet, "/empty", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(*gin.Context) { panic("nil pet") })

	w := testhttp.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	testhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	preflight := func(cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(cfg))
		router.GET("/api/appointments/export", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/api/appointments/export", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
	base := config.CORSConfig{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}

	t.Run("許可オリジンはクレデンシャル付き", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"http://localhost:3000"}
		w := preflight(cfg, "http://localhost:3000")

		testhttp.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "http://localhost:3000",
			"Access-Control-Allow-Credentials": "true",
		})
		exposed := w.Header().Get("Access-Control-Expose-Headers")
		assert.Contains(t, exposed, "Content-Disposition")
		assert.Contains(t, exposed, "Retry-After")
	})

	t.Run("ワイルドカードではクレデンシャルを外す", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}
		w := preflight(cfg, "http://example.com")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
