package router

import (
	"campuscart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupAddressRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
