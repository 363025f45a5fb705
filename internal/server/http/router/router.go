package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/handlers"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StationFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/tariffs", catalogHandler.Tariffs)
	api.GET("/playlist", catalogHandler.Playlist)
	api.GET("/settings", catalogHandler.Settings)

	order := api.Group("/order")
	order.POST("/quote", orderHandler.Quote)
	order.POST("/promo", orderHandler.ApplyPromo)
	order.POST("", orderHandler.Submit)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:id", adminHandler.UpdateOrder)
	admin.DELETE("/orders/:id", adminHandler.DeleteOrder)
	admin.POST("/settings", adminHandler.UpdateSettings)
	admin.PUT("/tariffs", adminHandler.SaveTariff)
	admin.POST("/playlist", adminHandler.AddTrack)

	return engine
}
