package dto

import (
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// OrderDraftRequest is the customer form as submitted by the UI. Empty
// tariff and payment method fall back to the form defaults.
type OrderDraftRequest struct {
	TrackName           string `json:"track_name"`
	Artist              string `json:"artist"`
	CustomerName        string `json:"customer_name"`
	CustomerPhone       string `json:"customer_phone"`
	Tariff              string `json:"tariff"`
	HasCelebration      bool   `json:"has_celebration"`
	CelebrationCategory string `json:"celebration_category" binding:"omitempty,oneof=birthday other"`
	CelebrationText     string `json:"celebration_text"`
	CelebrationType     string `json:"celebration_type"`
	PaymentMethod       string `json:"payment_method" binding:"omitempty,oneof=online cash"`
	PromoCode           string `json:"promo_code"`
	PromoApplied        bool   `json:"promo_applied"`
}

// State rebuilds the draft state by replaying the request through the
// form transitions, so wire input obeys the same rules as interactive
// edits. The category is applied before the celebration texts; otherwise
// switching away from the default would wipe them.
func (r OrderDraftRequest) State() draft.State {
	s := draft.New().
		SetTrack(r.TrackName, r.Artist).
		SetCustomer(r.CustomerName, r.CustomerPhone)
	if r.Tariff != "" {
		s = s.SetTariff(r.Tariff)
	}
	s = s.SetCelebration(r.HasCelebration)
	if r.CelebrationCategory != "" {
		s = s.SetCelebrationCategory(model.CelebrationCategory(r.CelebrationCategory))
	}
	s = s.SetCelebrationText(r.CelebrationText).
		SetCelebrationType(r.CelebrationType)
	if r.PaymentMethod != "" {
		s = s.SetPaymentMethod(model.PaymentMethod(r.PaymentMethod))
	}
	s = s.SetPromoCode(r.PromoCode)
	// The applied flag is client-held form state; pricing re-validates it
	// against the published code before honoring it.
	s.Promo.Applied = r.PromoApplied
	return s
}

// QuoteResponse carries the computed total for a draft.
type QuoteResponse struct {
	Price int `json:"price"`
}

// PromoApplyRequest carries the entered promo code.
type PromoApplyRequest struct {
	PromoCode string `json:"promo_code" binding:"required"`
}

// PromoApplyResponse reports the redemption outcome.
type PromoApplyResponse struct {
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

// SubmitResponse returns the created order together with the reset form.
type SubmitResponse struct {
	Order model.Order      `json:"order"`
	Draft model.OrderDraft `json:"draft"`
}

// ErrorResponse is the uniform failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
