package test

import (
	"context"
	"sync/atomic"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// StationFacadeStub provides controllable behaviour for every HTTP
// endpoint. Unset functions return benign defaults so tests only wire
// what they assert on.
type StationFacadeStub struct {
	QuoteFn          func(context.Context, draft.State) (int, error)
	ApplyPromoFn     func(context.Context, draft.State) (draft.State, error)
	SubmitOrderFn    func(context.Context, draft.State) (*model.Order, draft.State, error)
	TariffsFn        func(context.Context) ([]model.Tariff, error)
	PublicSettingsFn func(context.Context) (*model.Settings, error)
	PlaylistFn       func(context.Context) []model.PlaylistTrack
	AdminOrdersFn    func(context.Context, model.AdminSession) ([]model.Order, error)
	UpdateOrderFn    func(context.Context, model.AdminSession, int64, model.OrderStatus, model.PaymentStatus) (*model.Order, error)
	DeleteOrderFn    func(context.Context, model.AdminSession, int64, bool) error
	UpdateSettingsFn func(context.Context, model.AdminSession, model.SettingsUpdate) (*model.Settings, error)
	SaveTariffFn     func(context.Context, model.AdminSession, model.Tariff) (*model.Tariff, error)
	AddTrackFn       func(context.Context, model.AdminSession, string, string) (*model.PlaylistTrack, error)

	SubmitCalls int32
	DeleteCalls int32
}

// Quote delegates to the configured function or prices at the fallback.
func (s *StationFacadeStub) Quote(ctx context.Context, state draft.State) (int, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, state)
	}
	return 500, nil
}

// ApplyPromo returns the configured outcome or marks the code applied.
func (s *StationFacadeStub) ApplyPromo(ctx context.Context, state draft.State) (draft.State, error) {
	if s.ApplyPromoFn != nil {
		return s.ApplyPromoFn(ctx, state)
	}
	state.Promo.Applied = true
	return state, nil
}

// SubmitOrder records the call and returns a created order by default.
func (s *StationFacadeStub) SubmitOrder(ctx context.Context, state draft.State) (*model.Order, draft.State, error) {
	atomic.AddInt32(&s.SubmitCalls, 1)
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, state)
	}
	return &model.Order{ID: 1, Price: 500}, state.Reset(), nil
}

// Tariffs returns configured tariffs or one standard entry.
func (s *StationFacadeStub) Tariffs(ctx context.Context) ([]model.Tariff, error) {
	if s.TariffsFn != nil {
		return s.TariffsFn(ctx)
	}
	return []model.Tariff{{TariffID: "standard", Name: "Standard", Price: 500}}, nil
}

// PublicSettings returns configured settings or an open intake.
func (s *StationFacadeStub) PublicSettings(ctx context.Context) (*model.Settings, error) {
	if s.PublicSettingsFn != nil {
		return s.PublicSettingsFn(ctx)
	}
	return &model.Settings{IsAcceptingOrders: true}, nil
}

// Playlist returns the configured snapshot or a single track.
func (s *StationFacadeStub) Playlist(ctx context.Context) []model.PlaylistTrack {
	if s.PlaylistFn != nil {
		return s.PlaylistFn(ctx)
	}
	return []model.PlaylistTrack{{ID: 1, TrackName: "One More Time", Artist: "Daft Punk"}}
}

// AdminOrders returns configured orders or a single pending one.
func (s *StationFacadeStub) AdminOrders(ctx context.Context, session model.AdminSession) ([]model.Order, error) {
	if s.AdminOrdersFn != nil {
		return s.AdminOrdersFn(ctx, session)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

// UpdateOrder returns the configured result or echoes the change.
func (s *StationFacadeStub) UpdateOrder(ctx context.Context, session model.AdminSession, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, session, id, status, payment)
	}
	return &model.Order{ID: id, Status: status, PaymentStatus: payment}, nil
}

// DeleteOrder records the call and delegates when configured.
func (s *StationFacadeStub) DeleteOrder(ctx context.Context, session model.AdminSession, id int64, confirmed bool) error {
	atomic.AddInt32(&s.DeleteCalls, 1)
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, session, id, confirmed)
	}
	return nil
}

// UpdateSettings returns the configured result or an open intake.
func (s *StationFacadeStub) UpdateSettings(ctx context.Context, session model.AdminSession, upd model.SettingsUpdate) (*model.Settings, error) {
	if s.UpdateSettingsFn != nil {
		return s.UpdateSettingsFn(ctx, session, upd)
	}
	settings := &model.Settings{IsAcceptingOrders: true}
	if upd.IsAcceptingOrders != nil {
		settings.IsAcceptingOrders = *upd.IsAcceptingOrders
	}
	if upd.PromoCode != nil {
		settings.PromoCode = *upd.PromoCode
	}
	return settings, nil
}

// SaveTariff returns the configured result or echoes the tariff.
func (s *StationFacadeStub) SaveTariff(ctx context.Context, session model.AdminSession, tariff model.Tariff) (*model.Tariff, error) {
	if s.SaveTariffFn != nil {
		return s.SaveTariffFn(ctx, session, tariff)
	}
	return &tariff, nil
}

// AddTrack returns the configured result or echoes the track.
func (s *StationFacadeStub) AddTrack(ctx context.Context, session model.AdminSession, trackName, artist string) (*model.PlaylistTrack, error) {
	if s.AddTrackFn != nil {
		return s.AddTrackFn(ctx, session, trackName, artist)
	}
	return &model.PlaylistTrack{ID: 1, TrackName: trackName, Artist: artist}, nil
}
