package model

// Settings is the singleton backend configuration record. PromoCode is
// empty when no promo is published.
type Settings struct {
	IsAcceptingOrders bool   `json:"is_accepting_orders"`
	PromoCode         string `json:"promo_code"`
}

// SettingsUpdate is a partial settings write. Nil fields are left
// untouched by the backend.
type SettingsUpdate struct {
	IsAcceptingOrders *bool   `json:"is_accepting_orders,omitempty"`
	PromoCode         *string `json:"promo_code,omitempty"`
}
