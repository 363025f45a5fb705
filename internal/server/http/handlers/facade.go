package handlers

import (
	"context"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// OrderFacade encapsulates the customer ordering workflow exposed via HTTP.
type OrderFacade interface {
	Quote(ctx context.Context, state draft.State) (int, error)
	ApplyPromo(ctx context.Context, state draft.State) (draft.State, error)
	SubmitOrder(ctx context.Context, state draft.State) (*model.Order, draft.State, error)
}

// CatalogFacade provides the public read-only data.
type CatalogFacade interface {
	Tariffs(ctx context.Context) ([]model.Tariff, error)
	PublicSettings(ctx context.Context) (*model.Settings, error)
	Playlist(ctx context.Context) []model.PlaylistTrack
}

// AdminFacade covers the moderation operations.
type AdminFacade interface {
	AdminOrders(ctx context.Context, session model.AdminSession) ([]model.Order, error)
	UpdateOrder(ctx context.Context, session model.AdminSession, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, session model.AdminSession, id int64, confirmed bool) error
	UpdateSettings(ctx context.Context, session model.AdminSession, upd model.SettingsUpdate) (*model.Settings, error)
	SaveTariff(ctx context.Context, session model.AdminSession, tariff model.Tariff) (*model.Tariff, error)
	AddTrack(ctx context.Context, session model.AdminSession, trackName, artist string) (*model.PlaylistTrack, error)
}

// StationFacade aggregates the full set of operations used across handlers.
type StationFacade interface {
	OrderFacade
	CatalogFacade
	AdminFacade
}
