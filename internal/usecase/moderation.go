package usecase

import (
	"context"
	"strings"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// ModerationUseCase covers the admin workflows. Every operation is an
// independent backend write; callers reload lists afterwards instead of
// patching local state.
type ModerationUseCase struct {
	backend backend.Client
}

// NewModerationUseCase constructs ModerationUseCase.
func NewModerationUseCase(client backend.Client) *ModerationUseCase {
	return &ModerationUseCase{backend: client}
}

// NextOrderStatus is the only status transition the moderation surface
// offers: a two-value cycle between pending and completed.
func NextOrderStatus(status model.OrderStatus) model.OrderStatus {
	if status == model.OrderStatusPending {
		return model.OrderStatusCompleted
	}
	return model.OrderStatusPending
}

// Orders lists all orders for moderation.
func (u *ModerationUseCase) Orders(ctx context.Context, session model.AdminSession) ([]model.Order, error) {
	return u.backend.Orders(ctx, session.Secret)
}

// SetIntake writes the intake gate and returns the backend-confirmed
// settings; callers must render only the confirmed value.
func (u *ModerationUseCase) SetIntake(ctx context.Context, session model.AdminSession, accepting bool) (*model.Settings, error) {
	return u.backend.UpdateSettings(ctx, session.Secret, model.SettingsUpdate{IsAcceptingOrders: &accepting})
}

// SetPromoCode overwrites the published promo code. Free text; an empty
// code unpublishes the promo.
func (u *ModerationUseCase) SetPromoCode(ctx context.Context, session model.AdminSession, code string) (*model.Settings, error) {
	return u.backend.UpdateSettings(ctx, session.Secret, model.SettingsUpdate{PromoCode: &code})
}

// UpdateSettings applies a combined partial settings write.
func (u *ModerationUseCase) UpdateSettings(ctx context.Context, session model.AdminSession, upd model.SettingsUpdate) (*model.Settings, error) {
	return u.backend.UpdateSettings(ctx, session.Secret, upd)
}

// UpdateOrder overwrites status and payment status of one order.
func (u *ModerationUseCase) UpdateOrder(ctx context.Context, session model.AdminSession, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error) {
	switch status {
	case model.OrderStatusPending, model.OrderStatusCompleted:
	default:
		return nil, domainErrors.ErrMissingRequired
	}
	switch payment {
	case model.PaymentStatusUnpaid, model.PaymentStatusPaid:
	default:
		return nil, domainErrors.ErrMissingRequired
	}
	return u.backend.UpdateOrder(ctx, session.Secret, id, status, payment)
}

// DeleteOrder irreversibly removes an order. The confirmed flag is the
// caller's explicit acknowledgement; without it no backend call is made.
func (u *ModerationUseCase) DeleteOrder(ctx context.Context, session model.AdminSession, id int64, confirmed bool) error {
	if !confirmed {
		return domainErrors.ErrMissingConfirmation
	}
	return u.backend.DeleteOrder(ctx, session.Secret, id)
}

// SaveTariff commits one staged tariff record as a full replace.
// The tariff_id key is immutable and the icon is not editable here.
func (u *ModerationUseCase) SaveTariff(ctx context.Context, session model.AdminSession, tariff model.Tariff) (*model.Tariff, error) {
	if strings.TrimSpace(tariff.TariffID) == "" || strings.TrimSpace(tariff.Name) == "" {
		return nil, domainErrors.ErrMissingRequired
	}
	if tariff.Price < 0 {
		return nil, domainErrors.ErrMissingRequired
	}
	return u.backend.SaveTariff(ctx, session.Secret, tariff)
}

// AddTrack appends a playlist track. Both fields are checked before any
// network call.
func (u *ModerationUseCase) AddTrack(ctx context.Context, session model.AdminSession, trackName, artist string) (*model.PlaylistTrack, error) {
	if strings.TrimSpace(trackName) == "" || strings.TrimSpace(artist) == "" {
		return nil, domainErrors.ErrMissingRequired
	}
	return u.backend.AddTrack(ctx, session.Secret, trackName, artist)
}
