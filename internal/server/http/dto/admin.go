package dto

// OrderUpdateRequest changes moderation state of one order. Status is a
// two-value cycle and payment knows only unpaid/paid; anything else is
// rejected at binding time.
type OrderUpdateRequest struct {
	Status        string `json:"status" binding:"required,oneof=pending completed"`
	PaymentStatus string `json:"payment_status" binding:"required,oneof=unpaid paid"`
}

// SettingsUpdateRequest is a partial settings write; omitted fields stay
// untouched.
type SettingsUpdateRequest struct {
	IsAcceptingOrders *bool   `json:"is_accepting_orders"`
	PromoCode         *string `json:"promo_code"`
}

// TariffSaveRequest commits one tariff edit. The icon is deliberately
// absent: it is not editable through moderation.
type TariffSaveRequest struct {
	TariffID     string `json:"tariff_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Price        int    `json:"price"`
	TimeEstimate string `json:"time_estimate"`
}

// TrackRequest appends one playlist entry.
type TrackRequest struct {
	TrackName string `json:"track_name"`
	Artist    string `json:"artist"`
}
