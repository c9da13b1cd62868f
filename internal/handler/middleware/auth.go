package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"groomer-crm/internal/handler/httperr"
	"groomer-crm/internal/pkg/cookie"
	"groomer-crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errTokenMissing = errors.New("access token missing")
	errNoUserID     = errors.New("user id missing from context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the owner of the request. Every tenant-scoped route
// sits behind it, so handlers can rely on GetUserID.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.AccessToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Unauthorized", nil)
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
			return
		}

		setUser(c, userID)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.AccessToken(c); token != "" {
			if userID, err := m.tokenValidator.ValidateToken(token); err == nil {
				setUser(c, userID)
			}
		}
		c.Next()
	}
}

func setUser(c *gin.Context, userID uuid.UUID) {
	c.Set(ctxUserIDKey, userID)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// MustUserID aborts with 500 when the auth middleware did not run. Handlers
// return immediately when ok is false.
func MustUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserID, "Internal server error", nil)
	}
	return id, ok
}
