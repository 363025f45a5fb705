package model

// Tariff is a priced service tier. Prices are whole currency units.
type Tariff struct {
	ID           int64  `json:"id,omitempty"`
	TariffID     string `json:"tariff_id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	TimeEstimate string `json:"time_estimate"`
	Icon         string `json:"icon"`
}
