package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

const minSecretLength = 32

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}
	if refresh <= access {
		return nil, fmt.Errorf("refresh token lifetime %s must exceed access token lifetime %s", refresh, access)
	}
	if len(cfg.JWT.Secret) < minSecretLength {
		slog.Warn("JWT_SECRET is shorter than recommended", "length", len(cfg.JWT.Secret), "min", minSecretLength)
	}

	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
