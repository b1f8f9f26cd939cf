package handler

import (
	"github.com/labstack/echo/v4"

	"campuscart/internal/usecase"
	"campuscart/pkg/response"
)

type AddressHandler struct {
	addressUseCase *usecase.AddressUseCase
}

func NewAddressHandler(addressUseCase *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{
		addressUseCase: addressUseCase,
	}
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	uid := c.Get("uid").(string)

	addresses, err := h.addressUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, addresses)
}

func (h *AddressHandler) AddAddress(c echo.Context) error {
	var req struct {
		Line string `json:"line" validate:"required"`
		City string `json:"city" validate:"required"`
		Zip  string `json:"zip"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	address, err := h.addressUseCase.Add(c.Request().Context(), uid, usecase.AddAddressInput{
		Line: req.Line,
		City: req.City,
		Zip:  req.Zip,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, address)
}

func (h *AddressHandler) RemoveAddress(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.addressUseCase.Remove(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Address removed",
	})
}

func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.addressUseCase.SetDefault(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Default address updated",
	})
}
