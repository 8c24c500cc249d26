package app

import (
	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/handlers"
	"github.com/zhou-jk/flashsale-api/internal/repository"
	"github.com/zhou-jk/flashsale-api/internal/services"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				repository.NewAuthLoginRepository,
				fx.As(new(services.AuthLoginRepository)),
			),
			fx.Annotate(
				services.NewAuthLoginService,
				fx.ParamTags("", "", "", `name:"jwt_ttl"`),
				fx.As(new(handlers.AuthLoginService)),
			),
			handlers.NewAuthLoginHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}
