package app

import (
	"context"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/usecase"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/worker"
)

// StationFacade aggregates the customer and moderation workflows behind
// one surface for the HTTP layer.
type StationFacade struct {
	orders     *usecase.OrderUseCase
	moderation *usecase.ModerationUseCase
	catalog    *usecase.CatalogUseCase
	playlist   *worker.PlaylistPoller
}

// NewStationFacade constructs StationFacade.
func NewStationFacade(orders *usecase.OrderUseCase, moderation *usecase.ModerationUseCase, catalog *usecase.CatalogUseCase, playlist *worker.PlaylistPoller) *StationFacade {
	return &StationFacade{orders: orders, moderation: moderation, catalog: catalog, playlist: playlist}
}

func (f *StationFacade) Quote(ctx context.Context, state draft.State) (int, error) {
	return f.orders.Quote(ctx, state)
}

func (f *StationFacade) ApplyPromo(ctx context.Context, state draft.State) (draft.State, error) {
	return f.orders.ApplyPromo(ctx, state)
}

func (f *StationFacade) SubmitOrder(ctx context.Context, state draft.State) (*model.Order, draft.State, error) {
	return f.orders.Submit(ctx, state)
}

func (f *StationFacade) Tariffs(ctx context.Context) ([]model.Tariff, error) {
	return f.catalog.Tariffs(ctx)
}

func (f *StationFacade) PublicSettings(ctx context.Context) (*model.Settings, error) {
	return f.catalog.Settings(ctx)
}

// Playlist serves the poller snapshot; it is at most one poll interval old.
func (f *StationFacade) Playlist(context.Context) []model.PlaylistTrack {
	return f.playlist.Snapshot()
}

func (f *StationFacade) AdminOrders(ctx context.Context, session model.AdminSession) ([]model.Order, error) {
	return f.moderation.Orders(ctx, session)
}

func (f *StationFacade) UpdateOrder(ctx context.Context, session model.AdminSession, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error) {
	return f.moderation.UpdateOrder(ctx, session, id, status, payment)
}

func (f *StationFacade) DeleteOrder(ctx context.Context, session model.AdminSession, id int64, confirmed bool) error {
	return f.moderation.DeleteOrder(ctx, session, id, confirmed)
}

func (f *StationFacade) UpdateSettings(ctx context.Context, session model.AdminSession, upd model.SettingsUpdate) (*model.Settings, error) {
	return f.moderation.UpdateSettings(ctx, session, upd)
}

func (f *StationFacade) SaveTariff(ctx context.Context, session model.AdminSession, tariff model.Tariff) (*model.Tariff, error) {
	return f.moderation.SaveTariff(ctx, session, tariff)
}

func (f *StationFacade) AddTrack(ctx context.Context, session model.AdminSession, trackName, artist string) (*model.PlaylistTrack, error) {
	return f.moderation.AddTrack(ctx, session, trackName, artist)
}
