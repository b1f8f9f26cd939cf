package middleware

import (
	"net/http"

	"campuscart/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// DonorOnly gates listing management behind the donor capability. The role
// is read from the profile document on every request, so an externally
// persisted role change takes effect without a new login.
func (m *RoleMiddleware) DonorOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify donor privileges")
		}

		if !user.CanListItems() {
			return echo.NewHTTPError(http.StatusForbidden, "Donor privileges required")
		}

		return next(c)
	}
}
