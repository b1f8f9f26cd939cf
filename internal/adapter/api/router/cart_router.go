package router

import (
	"campuscart/internal/adapter/api/handler"
	"campuscart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)

	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:index", cartHandler.ChangeQuantity)
	cart.DELETE("/items/:index", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
