package bootstrap

import (
	"gocery/internal/pkg/config"
	"gocery/internal/pkg/jwt"
	"gocery/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) commands.TokenValidator { return s },
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration)
}
