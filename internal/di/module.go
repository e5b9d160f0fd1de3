package di

import (
	"go.uber.org/fx"

	"github.com/ivolkoff/pizzeria/internal/app"
	"github.com/ivolkoff/pizzeria/internal/config"
	"github.com/ivolkoff/pizzeria/internal/logger"
	"github.com/ivolkoff/pizzeria/internal/metrics"
	"github.com/ivolkoff/pizzeria/internal/pkg/auth"
	"github.com/ivolkoff/pizzeria/internal/server/http/handlers"
	"github.com/ivolkoff/pizzeria/internal/server/http/router"
	"github.com/ivolkoff/pizzeria/internal/storage/postgres"
	"github.com/ivolkoff/pizzeria/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		metrics.Module,
		fx.Provide(func(f *app.PizzeriaFacade) handlers.PizzeriaFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
