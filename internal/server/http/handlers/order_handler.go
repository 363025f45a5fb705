package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/dto"
)

// OrderHandler manages the customer ordering endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Quote handles POST /api/order/quote.
func (h *OrderHandler) Quote(c *gin.Context) {
	var req dto.OrderDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid draft payload"})
		return
	}

	price, err := h.facade.Quote(c.Request.Context(), req.State())
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "pricing data unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Price: price})
}

// ApplyPromo handles POST /api/order/promo.
func (h *OrderHandler) ApplyPromo(c *gin.Context) {
	var req dto.PromoApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "promo code is required"})
		return
	}

	state, err := h.facade.ApplyPromo(c.Request.Context(), promoState(req.PromoCode))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPromoMismatch),
			errors.Is(err, domainErrors.ErrPromoNotActive):
			c.JSON(http.StatusUnprocessableEntity, dto.PromoApplyResponse{Applied: false, Error: "invalid promo code"})
		case errors.Is(err, domainErrors.ErrPromoAlreadyApplied):
			c.JSON(http.StatusUnprocessableEntity, dto.PromoApplyResponse{Applied: false, Error: "promo code already applied"})
		default:
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "settings unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PromoApplyResponse{Applied: state.Promo.Applied})
}

// Submit handles POST /api/order.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.OrderDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid draft payload"})
		return
	}

	order, state, err := h.facade.SubmitOrder(c.Request.Context(), req.State())
	if err != nil {
		var rejection backend.RejectionError
		switch {
		case errors.Is(err, domainErrors.ErrIntakeClosed):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "orders are not being accepted right now"})
		case errors.Is(err, domainErrors.ErrMissingRequired):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.As(err, &rejection):
			reason := rejection.Reason
			if reason == "" {
				reason = "order was rejected"
			}
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: reason})
		default:
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "order service unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitResponse{Order: *order, Draft: state.Draft})
}
