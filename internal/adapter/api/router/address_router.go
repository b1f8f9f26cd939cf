package router

import (
	"campuscart/internal/adapter/api/handler"
	"campuscart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAddressRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	addressHandler := handler.GetAddressHandler()

	addresses := e.Group("/v1/addresses")
	addresses.Use(authMiddleware.Authenticate)

	addresses.GET("", addressHandler.ListAddresses)
	addresses.POST("", addressHandler.AddAddress)
	addresses.DELETE("/:id", addressHandler.RemoveAddress)
	addresses.PUT("/:id/default", addressHandler.SetDefaultAddress)
}
