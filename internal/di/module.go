package di

import (
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/app"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/config"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/logger"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/handlers"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/router"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		backend.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StationFacade) handlers.StationFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
