package test

import (
	"context"
	"sync/atomic"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// BackendStub provides controllable behaviour for the remote backend
// client. Unset functions fall back to benign defaults; CreateOrderCalls
// counts submissions so tests can assert that guards short-circuit before
// any order is posted.
type BackendStub struct {
	SettingsFn       func(context.Context) (*model.Settings, error)
	UpdateSettingsFn func(context.Context, string, model.SettingsUpdate) (*model.Settings, error)
	TariffsFn        func(context.Context) ([]model.Tariff, error)
	SaveTariffFn     func(context.Context, string, model.Tariff) (*model.Tariff, error)
	PlaylistFn       func(context.Context) ([]model.PlaylistTrack, error)
	AddTrackFn       func(context.Context, string, string, string) (*model.PlaylistTrack, error)
	OrdersFn         func(context.Context, string) ([]model.Order, error)
	CreateOrderFn    func(context.Context, model.OrderDraft, int) (*model.Order, error)
	UpdateOrderFn    func(context.Context, string, int64, model.OrderStatus, model.PaymentStatus) (*model.Order, error)
	DeleteOrderFn    func(context.Context, string, int64) error

	CreateOrderCalls atomic.Int64
	DeleteOrderCalls atomic.Int64
}

func (s *BackendStub) Settings(ctx context.Context) (*model.Settings, error) {
	if s.SettingsFn != nil {
		return s.SettingsFn(ctx)
	}
	return &model.Settings{IsAcceptingOrders: true}, nil
}

func (s *BackendStub) UpdateSettings(ctx context.Context, secret string, upd model.SettingsUpdate) (*model.Settings, error) {
	if s.UpdateSettingsFn != nil {
		return s.UpdateSettingsFn(ctx, secret, upd)
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

func (s *BackendStub) Tariffs(ctx context.Context) ([]model.Tariff, error) {
	if s.TariffsFn != nil {
		return s.TariffsFn(ctx)
	}
	return []model.Tariff{{TariffID: "standard", Name: "Standard", Price: 500, TimeEstimate: "30 min", Icon: "Music"}}, nil
}

func (s *BackendStub) SaveTariff(ctx context.Context, secret string, tariff model.Tariff) (*model.Tariff, error) {
	if s.SaveTariffFn != nil {
		return s.SaveTariffFn(ctx, secret, tariff)
	}
	return &tariff, nil
}

func (s *BackendStub) Playlist(ctx context.Context) ([]model.PlaylistTrack, error) {
	if s.PlaylistFn != nil {
		return s.PlaylistFn(ctx)
	}
	return []model.PlaylistTrack{{ID: 1, TrackName: "Track", Artist: "Artist", IsPlaying: true}}, nil
}

func (s *BackendStub) AddTrack(ctx context.Context, secret, trackName, artist string) (*model.PlaylistTrack, error) {
	if s.AddTrackFn != nil {
		return s.AddTrackFn(ctx, secret, trackName, artist)
	}
	return &model.PlaylistTrack{ID: 1, TrackName: trackName, Artist: artist, IsPlaying: true}, nil
}

func (s *BackendStub) Orders(ctx context.Context, secret string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, secret)
	}
	return nil, nil
}

func (s *BackendStub) CreateOrder(ctx context.Context, draft model.OrderDraft, price int) (*model.Order, error) {
	s.CreateOrderCalls.Add(1)
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, draft, price)
	}
	return &model.Order{
		ID:            1,
		TrackName:     draft.TrackName,
		Artist:        draft.Artist,
		CustomerName:  draft.CustomerName,
		Tariff:        draft.Tariff,
		Price:         price,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
	}, nil
}

func (s *BackendStub) UpdateOrder(ctx context.Context, secret string, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, secret, id, status, payment)
	}
	return &model.Order{ID: id, Status: status, PaymentStatus: payment}, nil
}

func (s *BackendStub) DeleteOrder(ctx context.Context, secret string, id int64) error {
	s.DeleteOrderCalls.Add(1)
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, secret, id)
	}
	return nil
}
