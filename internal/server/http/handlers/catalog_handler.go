package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/dto"
)

// CatalogHandler serves the public read-only endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Tariffs handles GET /api/tariffs.
func (h *CatalogHandler) Tariffs(c *gin.Context) {
	tariffs, err := h.facade.Tariffs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "tariffs unavailable"})
		return
	}
	c.JSON(http.StatusOK, tariffs)
}

// Settings handles GET /api/settings.
func (h *CatalogHandler) Settings(c *gin.Context) {
	settings, err := h.facade.PublicSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "settings unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{IsAcceptingOrders: settings.IsAcceptingOrders, PromoCode: settings.PromoCode})
}

// Playlist handles GET /api/playlist. It serves the cached snapshot, so a
// backend outage never breaks the page.
func (h *CatalogHandler) Playlist(c *gin.Context) {
	tracks := h.facade.Playlist(c.Request.Context())
	if tracks == nil {
		tracks = []model.PlaylistTrack{}
	}
	c.JSON(http.StatusOK, tracks)
}
