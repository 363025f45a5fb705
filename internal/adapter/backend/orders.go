package backend

import (
	"context"
	"net/http"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// orderSubmission is the create-order wire payload: the full draft plus
// the price computed by the gateway.
type orderSubmission struct {
	model.OrderDraft
	Price int `json:"price"`
}

// orderUpdate is the moderation wire payload.
type orderUpdate struct {
	ID            int64               `json:"id"`
	Status        model.OrderStatus   `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
}

// Orders lists all orders, newest first. Admin only.
func (c *HTTPClient) Orders(ctx context.Context, secret string) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, c.orders, secret, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits a new order. The backend assigns id, pending status
// and unpaid payment status.
func (c *HTTPClient) CreateOrder(ctx context.Context, draft model.OrderDraft, price int) (*model.Order, error) {
	var created model.Order
	payload := orderSubmission{OrderDraft: draft, Price: price}
	if err := c.do(ctx, http.MethodPost, c.orders, "", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder overwrites status and payment status of one order.
func (c *HTTPClient) UpdateOrder(ctx context.Context, secret string, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error) {
	var updated model.Order
	payload := orderUpdate{ID: id, Status: status, PaymentStatus: payment}
	if err := c.do(ctx, http.MethodPut, c.orders, secret, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOrder removes an order by id, passed as a query parameter.
func (c *HTTPClient) DeleteOrder(ctx context.Context, secret string, id int64) error {
	return c.do(ctx, http.MethodDelete, withQueryID(c.orders, id), secret, nil, nil)
}
