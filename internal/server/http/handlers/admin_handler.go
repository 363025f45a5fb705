package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/dto"
)

// AdminHandler manages the moderation endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AdminOrders(c.Request.Context(), CurrentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrder handles PUT /api/admin/orders/:id.
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order update"})
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), CurrentSession(c), id,
		model.OrderStatus(req.Status), model.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/admin/orders/:id. Deletion requires
// confirm=true; without it nothing is removed.
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}
	confirmed := c.Query("confirm") == "true"

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentSession(c), id, confirmed); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateSettings handles POST /api/admin/settings.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid settings update"})
		return
	}

	upd := model.SettingsUpdate{IsAcceptingOrders: req.IsAcceptingOrders, PromoCode: req.PromoCode}
	settings, err := h.facade.UpdateSettings(c.Request.Context(), CurrentSession(c), upd)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveTariff handles PUT /api/admin/tariffs.
func (h *AdminHandler) SaveTariff(c *gin.Context) {
	var req dto.TariffSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tariff"})
		return
	}

	tariff, err := h.facade.SaveTariff(c.Request.Context(), CurrentSession(c), model.Tariff{
		TariffID:     req.TariffID,
		Name:         req.Name,
		Price:        req.Price,
		TimeEstimate: req.TimeEstimate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tariff)
}

// AddTrack handles POST /api/admin/playlist.
func (h *AdminHandler) AddTrack(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid track"})
		return
	}

	track, err := h.facade.AddTrack(c.Request.Context(), CurrentSession(c), req.TrackName, req.Artist)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, track)
}

func (h *AdminHandler) fail(c *gin.Context, err error) {
	var rejection backend.RejectionError
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, domainErrors.ErrMissingConfirmation),
		errors.Is(err, domainErrors.ErrMissingRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.As(err, &rejection):
		reason := rejection.Reason
		if reason == "" {
			reason = "request was rejected"
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: reason})
	default:
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "backend unavailable"})
	}
}
