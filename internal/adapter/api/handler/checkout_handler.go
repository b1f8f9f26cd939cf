package handler

import (
	"sync"

	"github.com/labstack/echo/v4"

	"campuscart/internal/usecase"
	"campuscart/pkg/errors"
	"campuscart/pkg/response"
)

// CheckoutHandler keeps one in-flight checkout session per user. Beginning
// a new checkout replaces any previous session; a completed session stays
// around so a stray resubmission is answered with a conflict instead of a
// duplicate order.
type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase

	mu       sync.Mutex
	sessions map[string]*usecase.CheckoutSession
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		sessions:        make(map[string]*usecase.CheckoutSession),
	}
}

type checkoutResponse struct {
	Session *usecase.CheckoutSession `json:"session"`
	Summary usecase.CheckoutSummary  `json:"summary"`
}

func (h *CheckoutHandler) session(uid string) (*usecase.CheckoutSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, ok := h.sessions[uid]
	return session, ok
}

func (h *CheckoutHandler) Begin(c echo.Context) error {
	uid := c.Get("uid").(string)

	session, err := h.checkoutUseCase.Begin(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	h.mu.Lock()
	h.sessions[uid] = session
	h.mu.Unlock()

	return response.Success(c, checkoutResponse{
		Session: session,
		Summary: session.Summary(),
	})
}

func (h *CheckoutHandler) GetSummary(c echo.Context) error {
	uid := c.Get("uid").(string)

	session, ok := h.session(uid)
	if !ok {
		return response.Error(c, errors.NotFound("Checkout session", nil))
	}

	return response.Success(c, checkoutResponse{
		Session: session,
		Summary: session.Summary(),
	})
}

func (h *CheckoutHandler) Submit(c echo.Context) error {
	var req struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		AddressID     string `json:"address_id"`
		PaymentMethod string `json:"payment_method"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	session, ok := h.session(uid)
	if !ok {
		return response.Error(c, errors.NotFound("Checkout session", nil))
	}

	order, err := h.checkoutUseCase.Submit(c.Request().Context(), session, usecase.SubmitInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		AddressID:     req.AddressID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}
