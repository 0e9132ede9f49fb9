package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/SiddharthManjul/vailes-NFT/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Mint endpoints (requires authentication; the JWT subject is the
		// caller's wallet address)
		v1.POST("/derivatives", middleware.Auth(authCfg), handler.MintDerivative)
		v1.POST("/admin/derivatives", middleware.Auth(authCfg), handler.AdminMintDerivative)

		// Derivative endpoints (public read access)
		v1.GET("/derivatives", handler.ListOwnedDerivatives)
		v1.GET("/derivatives/:id", handler.GetDerivative)
		v1.GET("/derivatives/:id/provenance", handler.GetProvenance)
		v1.GET("/derivatives/:id/uri", handler.GetTokenURI)

		// Base token reverse lookup (public read access)
		v1.GET("/base/:contract/:token_number/derivative", handler.GetBaseDerivative)

		// Registry counters (public read access)
		v1.GET("/stats", handler.GetStats)
	}
}
