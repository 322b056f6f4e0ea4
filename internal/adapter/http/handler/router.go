package handler

import (
	"cashback-catalog-service/internal/adapter/http/middleware"
	"cashback-catalog-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	QuerySvc       ports.CatalogQueryService
	CatalogSvc     ports.CatalogService
	ViewCache      ports.OfferViewCache // nil = cache disabled
	WebhookSecret  string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// Mutations ride on POST throughout: the admin UI submits plain HTML
// forms, which only speak GET and POST.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies the storage backend, Redis if enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Catalog-sync webhook
	webhookHandler := NewWebhookHandler(deps.WebhookSecret, deps.ViewCache, deps.Logger)
	r.POST("/webhooks/catalog-sync", webhookHandler.CatalogSync)

	// API v1 routes
	v1 := r.Group("/api/v1")

	offerHandler := NewOfferHandler(deps.QuerySvc, deps.CatalogSvc)
	offers := v1.Group("/offers")
	{
		offers.GET("", offerHandler.List)
		offers.GET("/orphaned", offerHandler.Orphaned)
		offers.POST("", offerHandler.Create)
		offers.POST("/:id", offerHandler.Update)
		offers.POST("/:id/delete", offerHandler.Delete)
	}

	merchantHandler := NewMerchantHandler(deps.CatalogSvc)
	merchants := v1.Group("/merchants")
	{
		merchants.GET("", merchantHandler.List)
		merchants.POST("", merchantHandler.Create)
		merchants.POST("/:id", merchantHandler.Update)
		merchants.POST("/:id/delete", merchantHandler.Delete)
	}

	return r
}
