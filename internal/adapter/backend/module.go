package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/config"
)

// Module exposes backend client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	urls := URLs{
		Orders:   p.Config.OrdersURL,
		Settings: p.Config.SettingsURL,
		Playlist: p.Config.PlaylistURL,
		Tariffs:  p.Config.TariffsURL,
	}
	return NewHTTPClient(urls, p.Config.BackendTimeout, p.Logger)
}
