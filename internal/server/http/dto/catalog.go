package dto

// SettingsResponse mirrors the public settings record: the intake gate
// and the promo code the order form matches against.
type SettingsResponse struct {
	IsAcceptingOrders bool   `json:"is_accepting_orders"`
	PromoCode         string `json:"promo_code"`
}
