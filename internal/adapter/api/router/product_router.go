package router

import (
	"campuscart/internal/adapter/api/handler"
	"campuscart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	// Browsing is public
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/:id", productHandler.GetProduct)

	// Listing management is donor-only
	listings := e.Group("/v1/my-listings")
	listings.Use(authMiddleware.Authenticate)
	listings.Use(roleMiddleware.DonorOnly)
	listings.GET("", productHandler.ListMyListings)
	listings.POST("", productHandler.CreateListing)
	listings.PUT("/:id", productHandler.UpdateListing)
	listings.DELETE("/:id", productHandler.DeleteListing)
}
