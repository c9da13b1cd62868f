package bootstrap

import (
	"log/slog"

	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Shorter secrets are accepted outside release mode so local .env files stay simple.
const minReleaseSecretLen = 32

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config, logger *slog.Logger) (*jwt.Service, error) {
	access, refresh, err := cfg.JWT.TTLs()
	if err != nil {
		return nil, errs.Wrap(err, "jwt config")
	}
	if len(cfg.JWT.Secret) < minReleaseSecretLen {
		if gin.Mode() == gin.ReleaseMode {
			return nil, errs.Newf("JWT_SECRET must be at least %d bytes in release mode", minReleaseSecretLen)
		}
		logger.Warn("JWT_SECRET is short; do not use this configuration in production")
	}

	logger.Info("JWT service configured", "access_ttl", access, "refresh_ttl", refresh)
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
