package router

import (
	"campuscart/internal/adapter/api/handler"
	"campuscart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()
	orderHandler := handler.GetOrderHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)

	checkout.POST("", checkoutHandler.Begin)
	checkout.GET("", checkoutHandler.GetSummary)
	checkout.POST("/submit", checkoutHandler.Submit)

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.History)
}
