package handler

import (
	"github.com/labstack/echo/v4"

	"campuscart/internal/usecase"
	"campuscart/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) History(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.History(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}
