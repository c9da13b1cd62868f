//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret as the app under test.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, accessTTL time.Duration) *jwt.Service {
	t.Helper()
	access, refresh, err := h.cfg.TTLs()
	require.NoError(t, err)
	if accessTTL != 0 {
		access = accessTTL
	}
	return jwt.NewService(h.cfg.Secret, access, refresh)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken returns an access token whose exp is already an hour past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, -time.Hour).GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}
