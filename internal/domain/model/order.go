package model

// OrderStatus describes moderation lifecycle of a track request.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// PaymentStatus describes whether an order has been paid for.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCash   PaymentMethod = "cash"
)

// CelebrationCategory classifies the celebration add-on.
type CelebrationCategory string

const (
	CelebrationBirthday CelebrationCategory = "birthday"
	CelebrationOther    CelebrationCategory = "other"
)

// OrderDraft is the customer-editable order form before submission.
// Field names follow the backend wire format.
type OrderDraft struct {
	TrackName           string              `json:"track_name"`
	Artist              string              `json:"artist"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhone       string              `json:"customer_phone"`
	Tariff              string              `json:"tariff"`
	HasCelebration      bool                `json:"has_celebration"`
	CelebrationCategory CelebrationCategory `json:"celebration_category"`
	CelebrationText     string              `json:"celebration_text"`
	CelebrationType     string              `json:"celebration_type"`
	PaymentMethod       PaymentMethod       `json:"payment_method"`
	PromoCode           string              `json:"promo_code"`
}

// Order is a persisted track request as the backend returns it.
// Timestamps arrive as opaque backend-formatted strings.
type Order struct {
	ID                  int64               `json:"id"`
	TrackName           string              `json:"track_name"`
	Artist              string              `json:"artist"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhone       string              `json:"customer_phone"`
	Tariff              string              `json:"tariff"`
	Price               int                 `json:"price"`
	Status              OrderStatus         `json:"status"`
	PaymentStatus       PaymentStatus       `json:"payment_status"`
	PaymentMethod       PaymentMethod       `json:"payment_method,omitempty"`
	HasCelebration      bool                `json:"has_celebration,omitempty"`
	CelebrationCategory CelebrationCategory `json:"celebration_category,omitempty"`
	CelebrationText     string              `json:"celebration_text,omitempty"`
	CelebrationType     string              `json:"celebration_type,omitempty"`
	CreatedAt           string              `json:"created_at"`
}
