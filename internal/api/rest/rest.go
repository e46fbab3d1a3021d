package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/evento-live/evento-gateway/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Storefront endpoints (public read access)
		v1.GET("/tickets", handler.ListTickets)
		v1.GET("/sale", handler.GetSaleFlags)
		v1.GET("/whitelist/:address", handler.CheckWhitelist)

		// Wallet session endpoints
		v1.GET("/session", handler.GetSession)
		v1.POST("/session/connect", handler.ConnectSession)
		v1.POST("/session/disconnect", handler.DisconnectSession)

		// Order endpoints
		v1.POST("/quote", handler.Quote)
		v1.POST("/purchase", handler.Purchase)

		// Admin endpoints (requires authentication)
		adminGroup := v1.Group("/admin", middleware.Auth(authCfg))
		{
			adminGroup.GET("/flags", handler.GetSaleFlags)
			adminGroup.PUT("/flags/sale", handler.SetSaleActive)
			adminGroup.PUT("/flags/early-bird", handler.SetEarlyBirdActive)
			adminGroup.PUT("/flags/whitelist", handler.SetWhitelistActive)
			adminGroup.PUT("/flags/cancelled", handler.SetEventCancelled)

			adminGroup.GET("/catalog", handler.GetCatalog)
			adminGroup.POST("/catalog/refresh", handler.RefreshCatalog)
			adminGroup.PATCH("/catalog/tickets/:id", handler.EditTicket)
			adminGroup.POST("/catalog/tickets", handler.AddTicket)
			adminGroup.POST("/catalog/commit", handler.CommitCatalog)

			adminGroup.GET("/discount-codes", handler.ListDiscountCodes)
			adminGroup.POST("/discount-codes", handler.RegisterDiscountCode)

			adminGroup.POST("/whitelist", handler.AddToWhitelist)
			adminGroup.DELETE("/whitelist/:address", handler.RemoveFromWhitelist)
		}
	}
}
