package bootstrap

import (
	"time"

	"loyalty-wallet/internal/pkg/config"
	"loyalty-wallet/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, duration,
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithLeeway(cfg.JWT.Leeway),
	)
}
